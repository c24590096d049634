package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PublicationStatus is the lifecycle state for images and blog posts.
// Galleries use a boolean flag instead (see Gallery.Published).
type PublicationStatus string

const (
	StatusDraft     PublicationStatus = "draft"
	StatusPublished PublicationStatus = "published"
	StatusArchived  PublicationStatus = "archived"
)

// PhotographyStyle classifies an image for search and filtering
type PhotographyStyle string

const (
	StyleLandscape  PhotographyStyle = "landscape"
	StylePortrait   PhotographyStyle = "portrait"
	StyleStreet     PhotographyStyle = "street"
	StyleWildlife   PhotographyStyle = "wildlife"
	StyleAstro      PhotographyStyle = "astro"
	StyleLongExpose PhotographyStyle = "long_exposure"
)

// Image represents a single photograph with its bilingual copy, location
// metadata and responsive URL variants
type Image struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	Slug string    `gorm:"unique;not null;index" json:"slug"`

	// Owning gallery (images always belong to exactly one gallery)
	GalleryID uuid.UUID `gorm:"type:uuid;not null;index" json:"gallery_id"`
	Gallery   *Gallery  `gorm:"foreignKey:GalleryID" json:"gallery,omitempty"`

	// Bilingual content
	Title       LocalizedText `gorm:"type:jsonb" json:"title"`
	Description LocalizedText `gorm:"type:jsonb" json:"description"`
	Caption     LocalizedText `gorm:"type:jsonb" json:"caption"`
	AltText     LocalizedText `gorm:"type:jsonb" json:"alt_text"`
	Tags        LocalizedList `gorm:"type:jsonb" json:"tags"`

	// Location metadata (searchable)
	LocationName *string `gorm:"index" json:"location_name"`
	City         *string `gorm:"index" json:"city"`
	Region       *string `gorm:"index" json:"region"`
	Country      *string `gorm:"index" json:"country"`

	// Geographic information
	Latitude  *decimal.Decimal `gorm:"type:decimal(10,8)" json:"latitude"`
	Longitude *decimal.Decimal `gorm:"type:decimal(11,8)" json:"longitude"`

	// Classification
	Style PhotographyStyle `gorm:"type:varchar(30);index" json:"style"`

	// Lifecycle
	Status   PublicationStatus `gorm:"type:varchar(20);default:'draft';index" json:"status"`
	Featured bool              `gorm:"default:false" json:"featured"`

	// Asset data
	OriginalURL string         `gorm:"not null" json:"original_url"`
	Variants    datatypes.JSON `gorm:"type:jsonb" json:"variants"` // width -> URL map produced by the image pipeline
	Exif        datatypes.JSON `gorm:"type:jsonb" json:"exif"`
	Width       int            `json:"width"`
	Height      int            `json:"height"`

	// Audit fields
	CreatedBy string         `gorm:"not null" json:"created_by"`
	UpdatedBy *string        `json:"updated_by"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
