package models

import (
	"gorm.io/gorm"

	"github.com/pamleeskitchen/bakehouse/internal/money"
)

// Product is a catalog item: a cake, loaf, pastry, or drink.
type Product struct {
	gorm.Model
	Name        string       `gorm:"size:255;not null;index" json:"name"`
	Description string       `gorm:"type:text" json:"description"`
	Price       money.Amount `gorm:"type:decimal(10,2);not null" json:"price"`
	Category    string       `gorm:"size:100;index" json:"category"`
	ImageURL    string       `gorm:"size:512" json:"imageUrl"`
	Available   bool         `gorm:"not null;default:true" json:"available"`
	Featured    bool         `gorm:"not null;default:false;index" json:"featured"`
	SortOrder   int          `gorm:"not null;default:0" json:"sortOrder"`
}
