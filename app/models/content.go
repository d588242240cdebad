package models

import (
	"time"

	"gorm.io/gorm"
)

// Special is a limited-time discount shown on the homepage.
type Special struct {
	gorm.Model
	Title           string     `gorm:"size:255;not null" json:"title"`
	Description     string     `gorm:"type:text" json:"description"`
	DiscountPercent int        `gorm:"not null" json:"discountPercent"`
	ImageURL        string     `gorm:"size:512" json:"imageUrl"`
	Active          bool       `gorm:"not null;default:true;index" json:"active"`
	ValidFrom       *time.Time `json:"validFrom,omitempty"`  // nil means immediately
	ValidUntil      *time.Time `json:"validUntil,omitempty"` // nil means no expiry
}

// Current reports whether the special is inside its validity window.
func (s Special) Current(now time.Time) bool {
	if s.ValidFrom != nil && now.Before(*s.ValidFrom) {
		return false
	}
	if s.ValidUntil != nil && !now.Before(*s.ValidUntil) {
		return false
	}
	return true
}

// GalleryImage is a photo in the shop's gallery.
type GalleryImage struct {
	gorm.Model
	Caption   string `gorm:"size:255" json:"caption"`
	Category  string `gorm:"size:100;index" json:"category"`
	ImageURL  string `gorm:"size:512;not null" json:"imageUrl"`
	Path      string `gorm:"size:512" json:"-"` // storage path of the uploaded file, empty for external URLs
	SortOrder int    `gorm:"not null;default:0" json:"sortOrder"`
}

// ContactMessage is a message sent through the contact form.
type ContactMessage struct {
	gorm.Model
	Name    string `gorm:"size:255;not null" json:"name"`
	Email   string `gorm:"size:255;not null" json:"email"`
	Phone   string `gorm:"size:50" json:"phone"`
	Subject string `gorm:"size:255" json:"subject"`
	Message string `gorm:"type:text;not null" json:"message"`
	Read    bool   `gorm:"not null;default:false;index" json:"read"`
}

// Setting is a key-value store for shop configuration editable from the
// admin panel (opening hours, banner text, contact details).
type Setting struct {
	gorm.Model
	Key   string `gorm:"size:128;uniqueIndex;not null" json:"key"`
	Value string `gorm:"type:text" json:"value"`
}
