package models

import (
	"time"
)

// Like represents a user's membership in a post's like set.
// The combination of UserID and PostID must be unique; the repository
// flips membership with an atomic insert-or-nothing so two concurrent
// toggles cannot produce a duplicate like or a double removal.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_post" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_user_post" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
