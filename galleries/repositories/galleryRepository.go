package repositories

import (
	"errors"
	"fmt"
	"photo-portfolio-backend/db/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GalleryRepository interface {
	CreateGallery(gallery *models.Gallery) (*models.Gallery, error)
	GetGalleryByID(id string) (*models.Gallery, error)
	GetGalleryBySlug(slug string) (*models.Gallery, error)
	UpdateGallery(gallery *models.Gallery) (*models.Gallery, error)
	DeleteGallery(id string) error
	SetPublished(id string, published bool, updatedBy string) (*models.Gallery, error)
	GetFilteredGalleries(pageSize int, offset int, filters map[string]string) ([]models.Gallery, int64, error)
	GetAllPublishedGalleries() ([]models.Gallery, error)
}

type galleryRepository struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) GalleryRepository {
	return &galleryRepository{
		db: db,
	}
}

func (r *galleryRepository) CreateGallery(gallery *models.Gallery) (*models.Gallery, error) {
	gallery.ID = uuid.New()
	err := r.db.Create(gallery).Error
	return gallery, err
}

func (r *galleryRepository) GetGalleryByID(id string) (*models.Gallery, error) {
	var gallery models.Gallery
	err := r.db.Preload("CoverImage").Preload("Images").First(&gallery, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("gallery with id '%s' not found", id)
		}
		return nil, err
	}
	return &gallery, nil
}

func (r *galleryRepository) GetGalleryBySlug(slug string) (*models.Gallery, error) {
	var gallery models.Gallery
	err := r.db.Preload("CoverImage").Preload("Images", "status = ?", models.StatusPublished).
		First(&gallery, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("gallery with slug '%s' not found", slug)
		}
		return nil, err
	}
	return &gallery, nil
}

func (r *galleryRepository) UpdateGallery(gallery *models.Gallery) (*models.Gallery, error) {
	if err := r.db.Save(gallery).Error; err != nil {
		return nil, err
	}
	return gallery, nil
}

func (r *galleryRepository) DeleteGallery(id string) error {
	return r.db.Delete(&models.Gallery{}, "id = ?", id).Error
}

func (r *galleryRepository) SetPublished(id string, published bool, updatedBy string) (*models.Gallery, error) {
	gallery, err := r.GetGalleryByID(id)
	if err != nil {
		return nil, err
	}
	gallery.Published = published
	gallery.UpdatedBy = &updatedBy
	if err := r.db.Model(gallery).Updates(map[string]interface{}{
		"published":  published,
		"updated_by": updatedBy,
	}).Error; err != nil {
		return nil, err
	}
	return gallery, nil
}

// GetAllPublishedGalleries is used by the startup reindex pass
func (r *galleryRepository) GetAllPublishedGalleries() ([]models.Gallery, error) {
	var galleries []models.Gallery
	err := r.db.Where("published = ?", true).Order("sort_order ASC").Find(&galleries).Error
	return galleries, err
}
