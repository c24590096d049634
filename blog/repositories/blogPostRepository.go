package repositories

import (
	"errors"
	"fmt"
	"time"

	"photo-portfolio-backend/db/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BlogPostRepository interface {
	CreateBlogPost(post *models.BlogPost) (*models.BlogPost, error)
	GetBlogPostByID(id string) (*models.BlogPost, error)
	GetBlogPostBySlug(slug string) (*models.BlogPost, error)
	UpdateBlogPost(post *models.BlogPost) (*models.BlogPost, error)
	DeleteBlogPost(id string) error
	GetFilteredBlogPosts(pageSize int, offset int, filters map[string]string) ([]models.BlogPost, int64, error)
	GetAllPublishedBlogPosts() ([]models.BlogPost, error)
}

type blogPostRepository struct {
	db *gorm.DB
}

func NewBlogPostRepository(db *gorm.DB) BlogPostRepository {
	return &blogPostRepository{
		db: db,
	}
}

func (r *blogPostRepository) CreateBlogPost(post *models.BlogPost) (*models.BlogPost, error) {
	post.ID = uuid.New()
	if post.Status == models.StatusPublished && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}
	err := r.db.Create(post).Error
	return post, err
}

func (r *blogPostRepository) GetBlogPostByID(id string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.Preload("FeaturedImage").First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("blog post with id '%s' not found", id)
		}
		return nil, err
	}
	return &post, nil
}

func (r *blogPostRepository) GetBlogPostBySlug(slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.Preload("FeaturedImage").First(&post, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("blog post with slug '%s' not found", slug)
		}
		return nil, err
	}
	return &post, nil
}

func (r *blogPostRepository) UpdateBlogPost(post *models.BlogPost) (*models.BlogPost, error) {
	if post.Status == models.StatusPublished && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}
	if err := r.db.Save(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

func (r *blogPostRepository) DeleteBlogPost(id string) error {
	return r.db.Delete(&models.BlogPost{}, "id = ?", id).Error
}

// GetFilteredBlogPosts retrieves posts with filtering and pagination
func (r *blogPostRepository) GetFilteredBlogPosts(pageSize int, offset int, filters map[string]string) ([]models.BlogPost, int64, error) {
	var posts []models.BlogPost
	var total int64

	db := r.db.Model(&models.BlogPost{})

	for key, value := range filters {
		switch key {
		case "status":
			db = db.Where("status = ?", value)
		case "slug":
			db = db.Where("slug ILIKE ?", "%"+value+"%")
		case "tag":
			db = db.Where("tags::text ILIKE ?", "%"+value+"%")
		case "start_date":
			db = db.Where("Date(published_at) >= ?", value)
		case "end_date":
			db = db.Where("Date(published_at) <= ?", value)
		case "created_by":
			db = db.Where("created_by ILIKE ?", "%"+value+"%")
		}
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Preload("FeaturedImage").
		Limit(pageSize).Offset(offset).
		Order("published_at DESC NULLS LAST, created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

// GetAllPublishedBlogPosts is used by the startup reindex pass
func (r *blogPostRepository) GetAllPublishedBlogPosts() ([]models.BlogPost, error) {
	var posts []models.BlogPost
	err := r.db.Where("status = ?", models.StatusPublished).Find(&posts).Error
	return posts, err
}
