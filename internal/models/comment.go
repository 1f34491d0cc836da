// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment represents a comment on a blog. A nil ParentID marks a top-level
// comment; replies reference their parent, forming a tree rooted at the blog.
//
// UpvotedBy and DownvotedBy are disjoint per user: the vote engine removes a
// user from the opposite set before adding them to the target set.
type Comment struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Content  string    `gorm:"type:text;not null" json:"content"`
	BlogID   uint      `gorm:"not null;index" json:"blog_id"`
	Blog     Blog      `gorm:"foreignKey:BlogID" json:"-"`
	UserID   uint      `gorm:"not null;index" json:"user_id"`
	User     User      `gorm:"foreignKey:UserID" json:"user"`
	ParentID *uint     `gorm:"index" json:"parent_id,omitempty"`
	Parent   *Comment  `gorm:"foreignKey:ParentID" json:"-"`
	Replies  []Comment `gorm:"foreignKey:ParentID" json:"replies,omitempty"`

	UpvotedBy   []User `gorm:"many2many:comment_upvotes" json:"upvoted_by,omitempty"`
	DownvotedBy []User `gorm:"many2many:comment_downvotes" json:"downvoted_by,omitempty"`
	// UpvoteCount/DownvoteCount are derived from set cardinality, never stored.
	UpvoteCount   int `gorm:"-" json:"upvote_count"`
	DownvoteCount int `gorm:"-" json:"downvote_count"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
