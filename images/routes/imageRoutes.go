package routes

import (
	"photo-portfolio-backend/images/controllers"
	imageRepo "photo-portfolio-backend/images/repositories"
	internalServices "photo-portfolio-backend/internal/services"
	"photo-portfolio-backend/middleware"
	searchRepo "photo-portfolio-backend/search/repositories"
	"photo-portfolio-backend/token"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func InitImageRoutes(
	app *fiber.App,
	db *gorm.DB,
	imageRepository imageRepo.ImageRepository,
	searchRepository searchRepo.SearchRepositoryInterface,
	geminiService *internalServices.GeminiService,
	redisClient *redis.Client,
	tokenMaker token.Maker,
) {
	imageController := &controllers.ImageController{
		ImageRepo:     imageRepository,
		SearchRepo:    searchRepository,
		GeminiService: geminiService,
		DB:            db,
		RedisClient:   redisClient,
	}

	publicRoutes := app.Group("/api/v1/images")
	publicRoutes.Get("/", imageController.GetFilteredImages)
	publicRoutes.Get("/:slug", imageController.GetImageBySlug)

	adminRoutes := app.Group("/api/v1/images", middleware.RequireAuth(tokenMaker))
	adminRoutes.Post("/", imageController.CreateImage)
	adminRoutes.Put("/:id", imageController.UpdateImage)
	adminRoutes.Delete("/:id", imageController.DeleteImage)
	adminRoutes.Post("/:id/alt-text", imageController.GenerateAltText)
}
