package models

import "gorm.io/gorm"

// User is a storefront account. Admins manage the catalog and orders;
// regular users get order history tied to their email.
type User struct {
	gorm.Model
	Name     string `gorm:"size:255;not null" json:"name"`
	Email    string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"` // hashed, never serialised
	IsAdmin  bool   `gorm:"not null;default:false" json:"isAdmin"`
	Phone    string `gorm:"size:50" json:"phone"`
}
