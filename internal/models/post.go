package models

import (
	"time"

	"gorm.io/gorm"
)

// Limits enforced on post and comment content.
const (
	MaxTitleLen   = 100
	MaxContentLen = 5000
	MaxCommentLen = 500
)

// Post represents a post in the DevConnect feed.
//
// Likes is the post's like set: one row per (user, post) pair, with
// uniqueness enforced by a composite index so membership flips atomically
// at the storage layer. Comments are append-only and kept in insertion order.
type Post struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	UserID   uint      `gorm:"not null;index" json:"user_id"`
	User     User      `gorm:"foreignKey:UserID" json:"user"`
	Title    string    `gorm:"size:100;not null" json:"title"`
	Content  string    `gorm:"type:text;not null" json:"content"`
	ImageURL string    `json:"image_url,omitempty"`
	Likes    []Like    `gorm:"foreignKey:PostID" json:"likes"`
	Comments []Comment `gorm:"foreignKey:PostID" json:"comments"`
	// LikesCount and CommentsCount are not persisted; computed at query time.
	LikesCount    int `gorm:"->" json:"likes_count"`
	CommentsCount int `gorm:"->" json:"comments_count"`
	// Liked indicates whether the requesting user liked this post (computed).
	Liked     bool           `gorm:"->" json:"liked"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// LikeUserIDs returns the ids of users currently in the like set.
func (p *Post) LikeUserIDs() []uint {
	ids := make([]uint, 0, len(p.Likes))
	for _, l := range p.Likes {
		ids = append(ids, l.UserID)
	}
	return ids
}
