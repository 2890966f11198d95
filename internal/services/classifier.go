package services

import (
	"regexp"

	"github.com/ribbitly/backend/internal/models"
)

// Markers must anchor at the start of the content; the username is the
// contiguous non-whitespace run immediately after the marker.
var (
	directMessageMarker = regexp.MustCompile(`^d@(\S+)`)
	replyMarker         = regexp.MustCompile(`^@(\S+)`)
)

// Classification is the derived category of a micropost.
type Classification struct {
	DirectMessage   bool
	InReplyToUserID *uint
}

// UserResolver looks up a user by username (case-insensitive).
type UserResolver func(username string) (*models.User, error)

// Classify derives a post's category from its raw content. A leading "d@name"
// marks a direct message, a leading "@name" marks a reply. An addressed
// username that does not resolve is not an error; the post is simply created
// without the reference.
func Classify(content string, resolve UserResolver) Classification {
	if m := directMessageMarker.FindStringSubmatch(content); m != nil {
		c := Classification{DirectMessage: true}
		if user, err := resolve(m[1]); err == nil && user != nil {
			c.InReplyToUserID = &user.ID
		}
		return c
	}
	if m := replyMarker.FindStringSubmatch(content); m != nil {
		c := Classification{}
		if user, err := resolve(m[1]); err == nil && user != nil {
			c.InReplyToUserID = &user.ID
		}
		return c
	}
	return Classification{}
}
