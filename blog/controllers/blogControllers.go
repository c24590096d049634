package controllers

import (
	blogRepo "photo-portfolio-backend/blog/repositories"
	blogServices "photo-portfolio-backend/blog/services"
	searchRepo "photo-portfolio-backend/search/repositories"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type BlogController struct {
	BlogRepo     blogRepo.BlogPostRepository
	SearchRepo   searchRepo.SearchRepositoryInterface
	RelatedPosts *blogServices.RelatedPostsService
	DB           *gorm.DB
	RedisClient  *redis.Client
}
