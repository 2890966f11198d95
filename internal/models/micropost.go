package models

import "time"

// Micropost is a short message authored by a user. The addressed-user
// reference and the direct-message flag are derived from the content by the
// classifier at creation time, never supplied by the client.
type Micropost struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	UserID          uint      `json:"user_id" gorm:"index;not null"`
	Content         string    `json:"content" gorm:"size:140;not null"`
	InReplyToUserID *uint     `json:"in_reply_to_user_id,omitempty" gorm:"index"`
	DirectMessage   bool      `json:"direct_message" gorm:"default:false;index"`
	CreatedAt       time.Time `json:"created_at" gorm:"index"`
}

type CreateMicropostRequest struct {
	Content string `json:"content" validate:"required,max=140"`
}
