package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BlogPost represents a journal entry on the portfolio site
type BlogPost struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	Slug string    `gorm:"unique;not null;index" json:"slug"`

	// Bilingual content
	Title    LocalizedText `gorm:"type:jsonb" json:"title"`
	Subtitle LocalizedText `gorm:"type:jsonb" json:"subtitle"`
	Excerpt  LocalizedText `gorm:"type:jsonb" json:"excerpt"`
	Body     LocalizedText `gorm:"type:jsonb" json:"body"`
	Tags     LocalizedList `gorm:"type:jsonb" json:"tags"`

	// Featured image reference
	FeaturedImageID *uuid.UUID `gorm:"type:uuid;index" json:"featured_image_id"`
	FeaturedImage   *Image     `gorm:"foreignKey:FeaturedImageID" json:"featured_image,omitempty"`

	// Lifecycle
	Status      PublicationStatus `gorm:"type:varchar(20);default:'draft';index" json:"status"`
	PublishedAt *time.Time        `json:"published_at"`

	// Reading time in minutes, recomputed on save
	ReadingTime int `gorm:"default:0" json:"reading_time"`

	// Audit fields
	CreatedBy string         `gorm:"not null" json:"created_by"`
	UpdatedBy *string        `json:"updated_by"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
