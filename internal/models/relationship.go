package models

import "time"

// Relationship is a directed follow edge: the follower receives the followed
// user's public microposts in their feed. The composite unique index keeps a
// pair from being recorded twice.
type Relationship struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	FollowerID uint      `json:"follower_id" gorm:"index;uniqueIndex:idx_follower_followed"`
	FollowedID uint      `json:"followed_id" gorm:"index;uniqueIndex:idx_follower_followed"`
	CreatedAt  time.Time `json:"created_at"`
}
