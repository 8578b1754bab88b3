package models

import (
	"time"
)

// SocialLinks groups a profile's external links. Stored embedded on the
// profile row rather than as a separate table.
type SocialLinks struct {
	Github   string `json:"github"`
	Linkedin string `json:"linkedin"`
	Twitter  string `json:"twitter"`
}

// Profile is the public developer profile attached to a user.
// At most one profile exists per user; the application enforces this with
// a lookup before create rather than a storage-level constraint.
type Profile struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	UserID      uint        `gorm:"not null;index" json:"user_id"`
	User        User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Name        string      `gorm:"not null" json:"name"`
	Bio         string      `gorm:"type:text" json:"bio"`
	Skill       string      `json:"skill"`
	SocialLinks SocialLinks `gorm:"embedded;embeddedPrefix:social_" json:"social_links"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
