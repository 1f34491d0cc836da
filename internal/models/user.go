// Package models contains data structures for the application's domain models.
package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// User represents a registered account on the Inkwell platform.
type User struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Email       string         `gorm:"unique;not null" json:"email"`
	Password    string         `gorm:"not null" json:"-"`
	FirstName   string         `gorm:"not null" json:"first_name"`
	LastName    string         `json:"last_name"`
	Role        Role           `gorm:"type:varchar(10);not null;default:'Reader'" json:"role"`
	IsStaff     bool           `gorm:"not null;default:false" json:"is_staff"`
	Bio         string         `json:"bio"`
	ProfilePic  string         `json:"profile_pic"`
	PhoneNumber string         `json:"phone_number"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Blogs       []Blog         `gorm:"foreignKey:AuthorID" json:"blogs,omitempty"`
}

// FullName returns the first name plus the last name, with a space in between.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
