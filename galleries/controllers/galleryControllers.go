package controllers

import (
	galleryRepo "photo-portfolio-backend/galleries/repositories"
	searchRepo "photo-portfolio-backend/search/repositories"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type GalleryController struct {
	GalleryRepo galleryRepo.GalleryRepository
	SearchRepo  searchRepo.SearchRepositoryInterface
	DB          *gorm.DB
	RedisClient *redis.Client
}
