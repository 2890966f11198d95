package models

import "time"

// NotificationPreference is the per-user opt-in for follower emails. One row
// per user, created alongside the user; a missing row reads as "notify".
type NotificationPreference struct {
	ID                          uint      `json:"id" gorm:"primaryKey"`
	UserID                      uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	ReceiveFollowerNotification bool      `json:"receive_follower_notification" gorm:"default:true"`
	CreatedAt                   time.Time `json:"created_at"`
	UpdatedAt                   time.Time `json:"updated_at"`
}

type UpdatePreferenceRequest struct {
	ReceiveFollowerNotification *bool `json:"receive_follower_notification" validate:"required"`
}
