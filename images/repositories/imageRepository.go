package repositories

import (
	"errors"
	"fmt"
	"strings"

	"photo-portfolio-backend/db/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ImageRepository interface {
	CreateImage(image *models.Image) (*models.Image, error)
	GetImageByID(id string) (*models.Image, error)
	GetImageBySlug(slug string) (*models.Image, error)
	UpdateImage(image *models.Image) (*models.Image, error)
	DeleteImage(id string) error
	GetFilteredImages(pageSize int, offset int, filters map[string]string) ([]models.Image, int64, error)
	GetAllPublishedImages() ([]models.Image, error)
}

type imageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepository{
		db: db,
	}
}

func (r *imageRepository) CreateImage(image *models.Image) (*models.Image, error) {
	image.ID = uuid.New()
	if err := r.db.Create(image).Error; err != nil {
		return nil, err
	}
	// Reload with the owning gallery so indexing gets the back-reference
	return r.GetImageByID(image.ID.String())
}

func (r *imageRepository) GetImageByID(id string) (*models.Image, error) {
	var image models.Image
	err := r.db.Preload("Gallery").First(&image, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("image with id '%s' not found", id)
		}
		return nil, err
	}
	return &image, nil
}

func (r *imageRepository) GetImageBySlug(slug string) (*models.Image, error) {
	var image models.Image
	err := r.db.Preload("Gallery").First(&image, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("image with slug '%s' not found", slug)
		}
		return nil, err
	}
	return &image, nil
}

func (r *imageRepository) UpdateImage(image *models.Image) (*models.Image, error) {
	if err := r.db.Save(image).Error; err != nil {
		return nil, err
	}
	return image, nil
}

func (r *imageRepository) DeleteImage(id string) error {
	return r.db.Delete(&models.Image{}, "id = ?", id).Error
}

// GetFilteredImages retrieves images with filtering and pagination
func (r *imageRepository) GetFilteredImages(pageSize int, offset int, filters map[string]string) ([]models.Image, int64, error) {
	var images []models.Image
	var total int64

	db := r.db.Model(&models.Image{})

	for key, value := range filters {
		switch key {
		case "status":
			db = db.Where("status = ?", value)
		case "gallery_id":
			db = db.Where("gallery_id = ?", value)
		case "style":
			db = db.Where("style = ?", value)
		case "featured":
			if strings.ToLower(value) == "true" {
				db = db.Where("featured = ?", true)
			} else if strings.ToLower(value) == "false" {
				db = db.Where("featured = ?", false)
			}
		case "country":
			db = db.Where("country ILIKE ?", "%"+value+"%")
		case "city":
			db = db.Where("city ILIKE ?", "%"+value+"%")
		case "start_date":
			db = db.Where("Date(created_at) >= ?", value)
		case "end_date":
			db = db.Where("Date(created_at) <= ?", value)
		}
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Preload("Gallery").
		Limit(pageSize).Offset(offset).
		Order("created_at DESC").
		Find(&images).Error; err != nil {
		return nil, 0, err
	}

	return images, total, nil
}

// GetAllPublishedImages is used by the startup reindex pass
func (r *imageRepository) GetAllPublishedImages() ([]models.Image, error) {
	var images []models.Image
	err := r.db.Preload("Gallery").Where("status = ?", models.StatusPublished).Find(&images).Error
	return images, err
}
