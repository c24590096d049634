package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	AdminRole  Role = "admin"
	EditorRole Role = "editor"
)

// User represents an admin account for the portfolio backend. Visitors never
// have accounts; users exist only to manage content and moderate comments.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	FirstName string    `gorm:"not null" json:"first_name"`
	LastName  string    `gorm:"not null" json:"last_name"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `json:"-"` // bcrypt hash, never serialized

	// Role and second factor
	Role        Role   `gorm:"type:varchar(30);not null" json:"role"`
	TOTPSecret  string `json:"-" gorm:"column:totp_secret"`
	TOTPEnabled bool   `gorm:"default:false" json:"totp_enabled"`

	// Status
	Active      bool       `gorm:"default:true" json:"active"`
	LastLoginAt *time.Time `json:"last_login_at"`

	// Audit fields
	CreatedBy string         `gorm:"not null" json:"created_by"`
	UpdatedBy *string        `json:"updated_by"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
