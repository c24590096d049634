package controllers

import (
	imageRepo "photo-portfolio-backend/images/repositories"
	internalServices "photo-portfolio-backend/internal/services"
	searchRepo "photo-portfolio-backend/search/repositories"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type ImageController struct {
	ImageRepo     imageRepo.ImageRepository
	SearchRepo    searchRepo.SearchRepositoryInterface
	GeminiService *internalServices.GeminiService
	DB            *gorm.DB
	RedisClient   *redis.Client
}
