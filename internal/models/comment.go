package models

import (
	"time"
)

// Comment is a comment on a post.
//
// Comments are append-only from the API's perspective: there is no update
// or single-delete operation. They are removed in bulk only when their
// author deletes their own profile. Ordering is insertion order, fixed by
// (created_at, id).
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	Text      string    `gorm:"size:500;not null" json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
