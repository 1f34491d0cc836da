// Package models contains data structures for the application's domain models.
package models

// Category is an optional grouping for blogs. Deleting a category leaves its
// blogs uncategorized (SET NULL), it never deletes them.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;unique;not null" json:"name"`
}

// Tag is a free-form label attached to blogs via a many-to-many relation.
type Tag struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:50;unique;not null" json:"name"`
}
