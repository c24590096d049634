package repositories

import (
	"errors"
	"fmt"
	"time"

	"photo-portfolio-backend/db/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentRepository interface {
	CreateComment(comment *models.Comment) (*models.Comment, error)
	GetCommentByID(id string) (*models.Comment, error)
	GetApprovedCommentsForTarget(targetType models.CommentTarget, targetID string, pageSize int, offset int) ([]models.Comment, int64, error)
	GetFilteredComments(pageSize int, offset int, filters map[string]string) ([]models.Comment, int64, error)
	ModerateComment(id string, status models.CommentStatus, moderatedBy string) (*models.Comment, error)
	DeleteComment(id string) error
	ResolveTarget(targetType models.CommentTarget, targetID string) (string, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{
		db: db,
	}
}

func (r *commentRepository) CreateComment(comment *models.Comment) (*models.Comment, error) {
	comment.ID = uuid.New()
	comment.Status = models.CommentPending
	err := r.db.Create(comment).Error
	return comment, err
}

func (r *commentRepository) GetCommentByID(id string) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.First(&comment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("comment with id '%s' not found", id)
		}
		return nil, err
	}
	return &comment, nil
}

// GetApprovedCommentsForTarget returns the public comment thread for one
// content item, oldest first.
func (r *commentRepository) GetApprovedCommentsForTarget(targetType models.CommentTarget, targetID string, pageSize int, offset int) ([]models.Comment, int64, error) {
	var comments []models.Comment
	var total int64

	db := r.db.Model(&models.Comment{}).
		Where("target_type = ? AND target_id = ? AND status = ?", targetType, targetID, models.CommentApproved)

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Limit(pageSize).Offset(offset).Order("created_at ASC").Find(&comments).Error; err != nil {
		return nil, 0, err
	}

	return comments, total, nil
}

// GetFilteredComments is the moderation queue view
func (r *commentRepository) GetFilteredComments(pageSize int, offset int, filters map[string]string) ([]models.Comment, int64, error) {
	var comments []models.Comment
	var total int64

	db := r.db.Model(&models.Comment{})

	for key, value := range filters {
		switch key {
		case "status":
			db = db.Where("status = ?", value)
		case "target_type":
			db = db.Where("target_type = ?", value)
		case "target_id":
			db = db.Where("target_id = ?", value)
		case "author_name":
			db = db.Where("author_name ILIKE ?", "%"+value+"%")
		case "start_date":
			db = db.Where("Date(created_at) >= ?", value)
		case "end_date":
			db = db.Where("Date(created_at) <= ?", value)
		}
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Limit(pageSize).Offset(offset).Order("created_at DESC").Find(&comments).Error; err != nil {
		return nil, 0, err
	}

	return comments, total, nil
}

func (r *commentRepository) ModerateComment(id string, status models.CommentStatus, moderatedBy string) (*models.Comment, error) {
	comment, err := r.GetCommentByID(id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	comment.Status = status
	comment.ModeratedBy = &moderatedBy
	comment.ModeratedAt = &now

	if err := r.db.Model(comment).Updates(map[string]interface{}{
		"status":       status,
		"moderated_by": moderatedBy,
		"moderated_at": now,
	}).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

func (r *commentRepository) DeleteComment(id string) error {
	return r.db.Delete(&models.Comment{}, "id = ?", id).Error
}

// ResolveTarget checks that the commented content exists and is public,
// returning its English title for notification emails.
func (r *commentRepository) ResolveTarget(targetType models.CommentTarget, targetID string) (string, error) {
	switch targetType {
	case models.TargetGallery:
		var gallery models.Gallery
		if err := r.db.First(&gallery, "id = ? AND published = ?", targetID, true).Error; err != nil {
			return "", fmt.Errorf("published gallery '%s' not found", targetID)
		}
		return gallery.Title.Resolve(models.LocaleEnglish), nil
	case models.TargetImage:
		var image models.Image
		if err := r.db.First(&image, "id = ? AND status = ?", targetID, models.StatusPublished).Error; err != nil {
			return "", fmt.Errorf("published image '%s' not found", targetID)
		}
		return image.Title.Resolve(models.LocaleEnglish), nil
	case models.TargetBlogPost:
		var post models.BlogPost
		if err := r.db.First(&post, "id = ? AND status = ?", targetID, models.StatusPublished).Error; err != nil {
			return "", fmt.Errorf("published blog post '%s' not found", targetID)
		}
		return post.Title.Resolve(models.LocaleEnglish), nil
	}
	return "", fmt.Errorf("unknown target type '%s'", targetType)
}
