package models

import "time"

// Notification is a message addressed to a single user. Only its target may
// mark it read or delete it.
type Notification struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read" gorm:"default:false;index"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}
