package repositories

import (
	"strings"

	"photo-portfolio-backend/db/models"
)

// GetFilteredGalleries retrieves galleries with filtering and pagination
func (r *galleryRepository) GetFilteredGalleries(pageSize int, offset int, filters map[string]string) ([]models.Gallery, int64, error) {
	var galleries []models.Gallery
	var total int64

	db := r.db.Model(&models.Gallery{})

	for key, value := range filters {
		switch key {
		case "published":
			if strings.ToLower(value) == "true" {
				db = db.Where("published = ?", true)
			} else if strings.ToLower(value) == "false" {
				db = db.Where("published = ?", false)
			}
		case "slug":
			db = db.Where("slug ILIKE ?", "%"+value+"%")
		case "title":
			// Match either locale of a JSONB locale map, or the bare-string
			// shape a plain title persists as (#>> '{}' unwraps it).
			db = db.Where("title->>'en' ILIKE ? OR title->>'ta' ILIKE ? OR title #>> '{}' ILIKE ?",
				"%"+value+"%", "%"+value+"%", "%"+value+"%")
		case "tag":
			db = db.Where("tags::text ILIKE ?", "%"+value+"%")
		case "start_date":
			db = db.Where("Date(created_at) >= ?", value)
		case "end_date":
			db = db.Where("Date(created_at) <= ?", value)
		case "created_by":
			db = db.Where("created_by ILIKE ?", "%"+value+"%")
		}
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Preload("CoverImage").
		Limit(pageSize).Offset(offset).
		Order("sort_order ASC, created_at DESC").
		Find(&galleries).Error; err != nil {
		return nil, 0, err
	}

	return galleries, total, nil
}
