package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentStatus is the moderation state of a visitor comment
type CommentStatus string

const (
	CommentPending  CommentStatus = "pending"
	CommentApproved CommentStatus = "approved"
	CommentRejected CommentStatus = "rejected"
)

// CommentTarget identifies which content variant a comment is attached to
type CommentTarget string

const (
	TargetGallery  CommentTarget = "gallery"
	TargetImage    CommentTarget = "image"
	TargetBlogPost CommentTarget = "blog"
)

// Comment represents a visitor comment on a gallery, image or blog post.
// Comments are moderated: only approved comments are served publicly.
type Comment struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`

	// Polymorphic target reference
	TargetType CommentTarget `gorm:"type:varchar(20);not null;index:idx_comment_target" json:"target_type"`
	TargetID   uuid.UUID     `gorm:"type:uuid;not null;index:idx_comment_target" json:"target_id"`

	// Author (visitors are not accounts; email is never rendered publicly)
	AuthorName  string `gorm:"not null" json:"author_name"`
	AuthorEmail string `gorm:"not null" json:"-"`
	Website     *string `json:"website"`

	Body string `gorm:"type:text;not null" json:"body"`

	// Moderation
	Status      CommentStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	ModeratedBy *string       `json:"moderated_by"`
	ModeratedAt *time.Time    `json:"moderated_at"`

	// Submitting IP, kept for rate limiting and abuse follow-up only
	RemoteIP string `gorm:"not null" json:"-"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
