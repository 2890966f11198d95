package notify

import (
	"context"
	"log"

	"github.com/ribbitly/backend/internal/models"
)

// FollowerEvent is emitted when a user gains a follower and the followed
// user's preference allows notification. Delivery is someone else's problem;
// the core only hands over the event.
type FollowerEvent struct {
	FollowedID       uint   `json:"followed_id"`
	FollowedEmail    string `json:"followed_email"`
	FollowerID       uint   `json:"follower_id"`
	FollowerUsername string `json:"follower_username"`
}

// Notifier delivers new-follower events.
type Notifier interface {
	NotifyNewFollower(ctx context.Context, followed, follower *models.User) error
}

// NewFollowerEvent builds the event payload from the two users.
func NewFollowerEvent(followed, follower *models.User) FollowerEvent {
	return FollowerEvent{
		FollowedID:       followed.ID,
		FollowedEmail:    followed.Email,
		FollowerID:       follower.ID,
		FollowerUsername: follower.Username,
	}
}

// LogNotifier writes events to the standard logger. Used when neither SMTP
// nor NATS is configured, typically in development.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier { return &LogNotifier{} }

func (n *LogNotifier) NotifyNewFollower(_ context.Context, followed, follower *models.User) error {
	log.Printf("new follower: @%s is now following %s <%s>", follower.Username, followed.Username, followed.Email)
	return nil
}
