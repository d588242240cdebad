package services

import (
	"errors"
	"time"

	"github.com/pamleeskitchen/bakehouse/app/models"
	"github.com/pamleeskitchen/bakehouse/app/repositories"
	"github.com/pamleeskitchen/bakehouse/pkg/event"
	"github.com/pamleeskitchen/bakehouse/pkg/orm"
	"github.com/pamleeskitchen/bakehouse/pkg/storage"
)

var ErrContentNotFound = errors.New("not found")

// ContentService backs the homepage extras: specials, the gallery,
// contact messages, and shop settings.
type ContentService struct {
	content *repositories.ContentRepository
}

func NewContentService() *ContentService {
	return &ContentService{content: repositories.NewContentRepository()}
}

func (s *ContentService) ActiveSpecials() ([]models.Special, error) {
	return s.content.ActiveSpecials(time.Now())
}

func (s *ContentService) AllSpecials() ([]models.Special, error) {
	return s.content.AllSpecials()
}

func (s *ContentService) FindSpecial(id uint) (models.Special, error) {
	special, err := s.content.FindSpecial(id)
	if err != nil {
		return models.Special{}, ErrContentNotFound
	}
	return special, nil
}

func (s *ContentService) SaveSpecial(special *models.Special) error {
	return s.content.SaveSpecial(special)
}

func (s *ContentService) DeleteSpecial(id uint) error {
	special, err := s.content.FindSpecial(id)
	if err != nil {
		return ErrContentNotFound
	}
	return s.content.DeleteSpecial(&special)
}

// ExpireSpecials deactivates specials past their expiry date. The
// scheduler runs this daily so expired offers drop off the homepage
// even without an admin visit.
func (s *ContentService) ExpireSpecials() (int64, error) {
	return s.content.DeactivateExpiredSpecials(time.Now())
}

func (s *ContentService) Gallery() ([]models.GalleryImage, error) {
	return s.content.Gallery()
}

func (s *ContentService) AddGalleryImage(img *models.GalleryImage) error {
	return s.content.SaveGalleryImage(img)
}

func (s *ContentService) UpdateGalleryImage(img *models.GalleryImage) error {
	return s.content.SaveGalleryImage(img)
}

func (s *ContentService) FindGalleryImage(id uint) (models.GalleryImage, error) {
	img, err := s.content.FindGalleryImage(id)
	if err != nil {
		return models.GalleryImage{}, ErrContentNotFound
	}
	return img, nil
}

// DeleteGalleryImage removes the record and its stored file. A missing
// file is not an error; the record is what matters.
func (s *ContentService) DeleteGalleryImage(id uint) error {
	img, err := s.content.FindGalleryImage(id)
	if err != nil {
		return ErrContentNotFound
	}
	if img.Path != "" {
		_ = storage.Delete(img.Path)
	}
	return s.content.DeleteGalleryImage(&img)
}

// SubmitContactMessage stores a contact form submission and fires the
// event that queues the admin notification.
func (s *ContentService) SubmitContactMessage(msg *models.ContactMessage) error {
	if err := s.content.CreateContactMessage(msg); err != nil {
		return err
	}
	event.Fire("contact.received", *msg)
	return nil
}

func (s *ContentService) ContactMessages(page, limit int) ([]models.ContactMessage, orm.Pagination, error) {
	return s.content.ContactMessages(page, limit)
}

func (s *ContentService) MarkContactMessageRead(id uint) error {
	return s.content.MarkContactMessageRead(id)
}

func (s *ContentService) Settings() (map[string]string, error) {
	return s.content.Settings()
}

func (s *ContentService) UpdateSettings(values map[string]string) error {
	for key, value := range values {
		if err := s.content.PutSetting(key, value); err != nil {
			return err
		}
	}
	return nil
}
