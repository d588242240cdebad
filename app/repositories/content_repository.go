package repositories

import (
	"time"

	"github.com/pamleeskitchen/bakehouse/app/models"
	"github.com/pamleeskitchen/bakehouse/pkg/orm"
)

// ContentRepository handles specials, gallery images, contact messages,
// and shop settings.
type ContentRepository struct{}

func NewContentRepository() *ContentRepository {
	return &ContentRepository{}
}

// ActiveSpecials returns the specials currently shown on the homepage:
// active and inside their validity window.
func (r *ContentRepository) ActiveSpecials(now time.Time) ([]models.Special, error) {
	var specials []models.Special
	err := orm.DB().
		Model(&models.Special{}).
		Where("active = ?", true).
		Where("valid_from IS NULL OR valid_from <= ?", now).
		Where("valid_until IS NULL OR valid_until > ?", now).
		Order("created_at desc").
		Get(&specials)
	return specials, err
}

// AllSpecials returns every special for the admin panel.
func (r *ContentRepository) AllSpecials() ([]models.Special, error) {
	var specials []models.Special
	err := orm.DB().Model(&models.Special{}).Order("created_at desc").Get(&specials)
	return specials, err
}

// FindSpecial looks up a special by primary key.
func (r *ContentRepository) FindSpecial(id uint) (models.Special, error) {
	var special models.Special
	err := orm.DB().Model(&models.Special{}).Where("id = ?", id).First(&special)
	return special, err
}

// SaveSpecial creates or updates a special.
func (r *ContentRepository) SaveSpecial(s *models.Special) error {
	return orm.DB().Save(s)
}

// DeleteSpecial removes a special.
func (r *ContentRepository) DeleteSpecial(s *models.Special) error {
	return orm.DB().Delete(s)
}

// DeactivateExpiredSpecials flips active off for specials past expiry.
// Returns the number of rows changed. Run daily by the scheduler.
func (r *ContentRepository) DeactivateExpiredSpecials(now time.Time) (int64, error) {
	res := orm.DB().Gorm().
		Model(&models.Special{}).
		Where("active = ?", true).
		Where("valid_until IS NOT NULL AND valid_until <= ?", now).
		Update("active", false)
	return res.RowsAffected, res.Error
}

// Gallery returns all gallery images in display order.
func (r *ContentRepository) Gallery() ([]models.GalleryImage, error) {
	var images []models.GalleryImage
	err := orm.DB().Model(&models.GalleryImage{}).Order("sort_order asc, id asc").Get(&images)
	return images, err
}

// FindGalleryImage looks up a gallery image by primary key.
func (r *ContentRepository) FindGalleryImage(id uint) (models.GalleryImage, error) {
	var image models.GalleryImage
	err := orm.DB().Model(&models.GalleryImage{}).Where("id = ?", id).First(&image)
	return image, err
}

// SaveGalleryImage creates or updates a gallery image.
func (r *ContentRepository) SaveGalleryImage(img *models.GalleryImage) error {
	return orm.DB().Save(img)
}

// DeleteGalleryImage removes a gallery image record.
func (r *ContentRepository) DeleteGalleryImage(img *models.GalleryImage) error {
	return orm.DB().Delete(img)
}

// CreateContactMessage stores a contact form submission.
func (r *ContentRepository) CreateContactMessage(msg *models.ContactMessage) error {
	return orm.DB().Create(msg)
}

// FindContactMessage looks up a contact message by primary key.
func (r *ContentRepository) FindContactMessage(id uint) (models.ContactMessage, error) {
	var msg models.ContactMessage
	err := orm.DB().Model(&models.ContactMessage{}).Where("id = ?", id).First(&msg)
	return msg, err
}

// ContactMessages returns messages newest-first with pagination.
func (r *ContentRepository) ContactMessages(page, limit int) ([]models.ContactMessage, orm.Pagination, error) {
	var msgs []models.ContactMessage
	pagination, err := orm.DB().
		Model(&models.ContactMessage{}).
		Order("created_at desc").
		GetWithPagination(&msgs, page, limit)
	return msgs, pagination, err
}

// MarkContactMessageRead flags a message as read.
func (r *ContentRepository) MarkContactMessageRead(id uint) error {
	return orm.DB().Gorm().
		Model(&models.ContactMessage{}).
		Where("id = ?", id).
		Update("read", true).Error
}

// Settings returns all shop settings as a key-value map.
func (r *ContentRepository) Settings() (map[string]string, error) {
	var rows []models.Setting
	if err := orm.DB().Model(&models.Setting{}).Get(&rows); err != nil {
		return nil, err
	}
	out := make(map[string]string, len(rows))
	for _, s := range rows {
		out[s.Key] = s.Value
	}
	return out, nil
}

// PutSetting creates or updates one setting.
func (r *ContentRepository) PutSetting(key, value string) error {
	var existing models.Setting
	err := orm.DB().Model(&models.Setting{}).Where("key = ?", key).First(&existing)
	if err == nil {
		existing.Value = value
		return orm.DB().Save(&existing)
	}
	return orm.DB().Create(&models.Setting{Key: key, Value: value})
}
