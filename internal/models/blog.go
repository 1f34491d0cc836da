// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Blog represents a blog post owned by exactly one author.
//
// PublicationDate is set the first time IsPublished transitions to true and is
// never cleared again, even if the blog is later unpublished.
type Blog struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	Title           string         `gorm:"not null" json:"title"`
	Content         string         `gorm:"type:text;not null" json:"content"`
	AuthorID        uint           `gorm:"not null;index" json:"author_id"`
	Author          User           `gorm:"foreignKey:AuthorID" json:"author"`
	IsPublished     bool           `gorm:"not null;default:false" json:"is_published"`
	PublicationDate *time.Time     `json:"publication_date"`
	CategoryID      *uint          `gorm:"index" json:"category_id,omitempty"`
	Category        *Category      `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
	Tags            []Tag          `gorm:"many2many:blog_tags" json:"tags,omitempty"`
	Comments        []Comment      `gorm:"foreignKey:BlogID" json:"comments,omitempty"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int            `gorm:"->" json:"comments_count"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
