package seeders

import (
	"os"
	"time"

	"gorm.io/gorm"

	"github.com/pamleeskitchen/bakehouse/app/models"
	"github.com/pamleeskitchen/bakehouse/internal/money"
	"github.com/pamleeskitchen/bakehouse/pkg/auth"
)

func init() {
	Register("admin", SeedAdmin)
	Register("products", SeedProducts)
	Register("specials", SeedSpecials)
	Register("gallery", SeedGallery)
}

// SeedAdmin creates the admin account from ADMIN_EMAIL and
// ADMIN_PASSWORD. Skipped when the account already exists or the
// variables are unset.
func SeedAdmin(db *gorm.DB) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	var count int64
	db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	return db.Create(&models.User{
		Name:     "Pam Lee",
		Email:    email,
		Password: hash,
		IsAdmin:  true,
	}).Error
}

// SeedProducts inserts the starter catalog. Idempotent: skipped when
// products already exist.
func SeedProducts(db *gorm.DB) error {
	var count int64
	db.Model(&models.Product{}).Count(&count)
	if count > 0 {
		return nil
	}

	products := []models.Product{
		{Name: "Chocolate Layer Cake", Description: "Three layers of dark chocolate sponge with ganache.", Price: money.MustFromString("450.00"), Category: "cakes", Available: true, Featured: true, SortOrder: 1},
		{Name: "Red Velvet Cake", Description: "Classic red velvet with cream cheese frosting.", Price: money.MustFromString("480.00"), Category: "cakes", Available: true, SortOrder: 2},
		{Name: "Carrot Cake", Description: "Spiced carrot cake with walnuts.", Price: money.MustFromString("420.00"), Category: "cakes", Available: true, SortOrder: 3},
		{Name: "Fresh Croissants", Description: "Buttery croissants, baked every morning. Pack of four.", Price: money.MustFromString("25.00"), Category: "pastries", Available: true, Featured: true, SortOrder: 4},
		{Name: "Pain au Chocolat", Description: "Flaky pastry with dark chocolate batons. Pack of four.", Price: money.MustFromString("30.00"), Category: "pastries", Available: true, SortOrder: 5},
		{Name: "Cinnamon Rolls", Description: "Soft rolls with cinnamon sugar and vanilla glaze. Pack of six.", Price: money.MustFromString("35.00"), Category: "pastries", Available: true, SortOrder: 6},
		{Name: "Artisan Sourdough", Description: "Slow-fermented sourdough loaf with a crackling crust.", Price: money.MustFromString("55.00"), Category: "breads", Available: true, Featured: true, SortOrder: 7},
		{Name: "Whole Wheat Loaf", Description: "Hearty whole wheat sandwich loaf.", Price: money.MustFromString("40.00"), Category: "breads", Available: true, SortOrder: 8},
		{Name: "Assorted Cupcakes", Description: "Box of six cupcakes in seasonal flavours.", Price: money.MustFromString("60.00"), Category: "cupcakes", Available: true, SortOrder: 9},
		{Name: "Chocolate Chip Cookies", Description: "Chewy cookies with dark chocolate chunks. Dozen.", Price: money.MustFromString("45.00"), Category: "cookies", Available: true, SortOrder: 10},
	}
	return db.Create(&products).Error
}

// SeedSpecials inserts a couple of launch specials.
func SeedSpecials(db *gorm.DB) error {
	var count int64
	db.Model(&models.Special{}).Count(&count)
	if count > 0 {
		return nil
	}

	until := time.Now().AddDate(0, 1, 0)
	specials := []models.Special{
		{Title: "Weekend Brunch Box", Description: "Two croissants, two cinnamon rolls, and a sourdough loaf.", DiscountPercent: 15, Active: true, ValidUntil: &until},
		{Title: "Birthday Cake Bundle", Description: "Any layer cake plus a dozen cupcakes.", DiscountPercent: 10, Active: true},
	}
	return db.Create(&specials).Error
}

// SeedGallery inserts placeholder gallery entries.
func SeedGallery(db *gorm.DB) error {
	var count int64
	db.Model(&models.GalleryImage{}).Count(&count)
	if count > 0 {
		return nil
	}

	images := []models.GalleryImage{
		{Caption: "Morning bake", Category: "breads", ImageURL: "/storage/gallery/morning-bake.jpg", SortOrder: 1},
		{Caption: "Wedding cake, three tiers", Category: "cakes", ImageURL: "/storage/gallery/wedding-cake.jpg", SortOrder: 2},
		{Caption: "Sourdough crumb", Category: "breads", ImageURL: "/storage/gallery/sourdough.jpg", SortOrder: 3},
	}
	return db.Create(&images).Error
}
