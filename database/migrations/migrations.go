// Package migrations contains the database migration files. Each
// migration registers itself via init() and is imported for side
// effects by the CLI entrypoint.
package migrations

import (
	"gorm.io/gorm"

	"github.com/pamleeskitchen/bakehouse/app/models"
	"github.com/pamleeskitchen/bakehouse/pkg/migration"
	"github.com/pamleeskitchen/bakehouse/pkg/queue"
)

func init() {
	migration.Register("20260115000000_create_users_table", &CreateUsersTable{})
	migration.Register("20260115000001_create_products_table", &CreateProductsTable{})
	migration.Register("20260115000002_create_orders_table", &CreateOrdersTable{})
	migration.Register("20260115000003_create_content_tables", &CreateContentTables{})
	migration.Register("20260115000004_create_failed_jobs_table", &CreateFailedJobsTable{})
}

// -------- 0000: users --------

type CreateUsersTable struct{}

func (m *CreateUsersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{})
}

func (m *CreateUsersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("users")
}

// -------- 0001: products --------

type CreateProductsTable struct{}

func (m *CreateProductsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{})
}

func (m *CreateProductsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("products")
}

// -------- 0002: orders + items --------

type CreateOrdersTable struct{}

func (m *CreateOrdersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Order{}, &models.OrderItem{})
}

func (m *CreateOrdersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("order_items", "orders")
}

// -------- 0003: specials, gallery, contact, settings --------

type CreateContentTables struct{}

func (m *CreateContentTables) Up(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Special{},
		&models.GalleryImage{},
		&models.ContactMessage{},
		&models.Setting{},
	)
}

func (m *CreateContentTables) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(
		"specials", "gallery_images", "contact_messages", "settings",
	)
}

// -------- 0004: failed jobs --------

type CreateFailedJobsTable struct{}

func (m *CreateFailedJobsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&queue.FailedJobRecord{})
}

func (m *CreateFailedJobsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("bakehouse_failed_jobs")
}
