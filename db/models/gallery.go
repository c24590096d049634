package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Gallery represents a curated collection of images on the portfolio site
type Gallery struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	Slug string    `gorm:"unique;not null;index" json:"slug"`

	// Bilingual content
	Title       LocalizedText `gorm:"type:jsonb" json:"title"`
	Description LocalizedText `gorm:"type:jsonb" json:"description"`
	Excerpt     LocalizedText `gorm:"type:jsonb" json:"excerpt"`
	Tags        LocalizedList `gorm:"type:jsonb" json:"tags"`

	// Cover image reference (nullable: a fresh gallery has no cover yet)
	CoverImageID *uuid.UUID `gorm:"type:uuid;index" json:"cover_image_id"`
	CoverImage   *Image     `gorm:"foreignKey:CoverImageID" json:"cover_image,omitempty"`

	// Galleries use a plain published flag, not the status enum the other
	// collections carry. Search must filter on it.
	Published bool `gorm:"default:false;index" json:"published"`

	// Display ordering on the galleries page
	SortOrder int `gorm:"default:0" json:"sort_order"`

	// Relationships
	Images []Image `gorm:"foreignKey:GalleryID" json:"images,omitempty"`

	// Audit fields
	CreatedBy string         `gorm:"not null" json:"created_by"`
	UpdatedBy *string        `json:"updated_by"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
