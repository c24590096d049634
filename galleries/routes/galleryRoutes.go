package routes

import (
	"photo-portfolio-backend/galleries/controllers"
	galleryRepo "photo-portfolio-backend/galleries/repositories"
	"photo-portfolio-backend/middleware"
	searchRepo "photo-portfolio-backend/search/repositories"
	"photo-portfolio-backend/token"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func InitGalleryRoutes(
	app *fiber.App,
	db *gorm.DB,
	galleryRepository galleryRepo.GalleryRepository,
	searchRepository searchRepo.SearchRepositoryInterface,
	redisClient *redis.Client,
	tokenMaker token.Maker,
) {
	galleryController := &controllers.GalleryController{
		GalleryRepo: galleryRepository,
		SearchRepo:  searchRepository,
		DB:          db,
		RedisClient: redisClient,
	}

	publicRoutes := app.Group("/api/v1/galleries")
	publicRoutes.Get("/", galleryController.GetFilteredGalleries)
	publicRoutes.Get("/:slug", galleryController.GetGalleryBySlug)

	adminRoutes := app.Group("/api/v1/galleries", middleware.RequireAuth(tokenMaker))
	adminRoutes.Post("/", galleryController.CreateGallery)
	adminRoutes.Put("/:id", galleryController.UpdateGallery)
	adminRoutes.Delete("/:id", galleryController.DeleteGallery)
	adminRoutes.Patch("/:id/publish", galleryController.PublishGallery)
	adminRoutes.Get("/export/excel", galleryController.ExportGalleries)
	adminRoutes.Get("/:id/export/pdf", galleryController.ExportGalleryPDF)
}
