package controllers

import (
	"photo-portfolio-backend/config"
	"photo-portfolio-backend/db/models"
	"photo-portfolio-backend/galleries/services"
	"photo-portfolio-backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (gc *GalleryController) CreateGallery(c *fiber.Ctx) error {
	var gallery models.Gallery
	if err := c.BodyParser(&gallery); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"message": "Invalid request",
			"error":   err.Error(),
		})
	}

	if gallery.Slug == "" && !gallery.Title.IsZero() {
		gallery.Slug = utils.Slugify(gallery.Title.Resolve(models.LocaleEnglish))
	}

	if validationError := services.ValidateGallery(&gallery); validationError != "" {
		return c.Status(400).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   validationError,
		})
	}

	// Check for duplicate slug
	existingGallery, _ := gc.GalleryRepo.GetGalleryBySlug(gallery.Slug)
	if existingGallery != nil {
		return c.Status(409).JSON(fiber.Map{
			"message": "Duplicate slug",
			"error":   "A gallery with this slug already exists.",
			"slug":    gallery.Slug,
		})
	}

	createdGallery, err := gc.GalleryRepo.CreateGallery(&gallery)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"message": "Failed to create gallery",
			"error":   err.Error(),
		})
	}

	// Only published galleries enter the search index
	if gc.SearchRepo != nil && createdGallery.Published {
		err := gc.SearchRepo.IndexSingleGallery(*createdGallery)
		if err != nil {
			config.Logger.Error("Error indexing gallery", zap.Error(err), zap.String("galleryID", createdGallery.ID.String()))
		} else {
			config.Logger.Info("Successfully indexed gallery in Bleve", zap.String("galleryID", createdGallery.ID.String()))
		}
	}

	utils.InvalidateCacheAsync(gc.RedisClient, "search")

	return c.Status(201).JSON(fiber.Map{
		"message": "Gallery created successfully",
		"data":    createdGallery,
	})
}
