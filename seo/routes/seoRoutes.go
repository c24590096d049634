package routes

import (
	blogRepo "photo-portfolio-backend/blog/repositories"
	galleryRepo "photo-portfolio-backend/galleries/repositories"
	imageRepo "photo-portfolio-backend/images/repositories"
	"photo-portfolio-backend/seo/controllers"
	seoServices "photo-portfolio-backend/seo/services"

	"github.com/gofiber/fiber/v2"
)

func InitSeoRoutes(
	app *fiber.App,
	galleryRepository galleryRepo.GalleryRepository,
	imageRepository imageRepo.ImageRepository,
	blogRepository blogRepo.BlogPostRepository,
) {
	metaService := seoServices.NewMetaService(galleryRepository, imageRepository, blogRepository)
	seoController := controllers.NewSeoController(metaService)

	publicRoutes := app.Group("/api/v1/seo")
	publicRoutes.Get("/meta", seoController.GetPageMeta)
}
