package controllers

import (
	"photo-portfolio-backend/config"
	"photo-portfolio-backend/db/models"
	"photo-portfolio-backend/galleries/services"
	"photo-portfolio-backend/middleware"
	"photo-portfolio-backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (gc *GalleryController) UpdateGallery(c *fiber.Ctx) error {
	id := c.Params("id")

	existing, err := gc.GalleryRepo.GetGalleryByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{
			"message": "Gallery not found",
			"error":   err.Error(),
		})
	}

	var payload models.Gallery
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"message": "Invalid request",
			"error":   err.Error(),
		})
	}

	existing.Title = payload.Title
	existing.Description = payload.Description
	existing.Excerpt = payload.Excerpt
	existing.Tags = payload.Tags
	existing.CoverImageID = payload.CoverImageID
	existing.SortOrder = payload.SortOrder
	if payload.Slug != "" {
		existing.Slug = payload.Slug
	}
	if email, ok := c.Locals(middleware.ContextKeyUserEmail).(string); ok && email != "" {
		existing.UpdatedBy = &email
	}

	if validationError := services.ValidateGallery(existing); validationError != "" {
		return c.Status(400).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   validationError,
		})
	}

	updatedGallery, err := gc.GalleryRepo.UpdateGallery(existing)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"message": "Failed to update gallery",
			"error":   err.Error(),
		})
	}

	if gc.SearchRepo != nil {
		if updatedGallery.Published {
			if err := gc.SearchRepo.UpdateGallery(*updatedGallery); err != nil {
				config.Logger.Error("Error reindexing gallery", zap.Error(err), zap.String("galleryID", updatedGallery.ID.String()))
			}
		} else {
			if err := gc.SearchRepo.DeleteGallery(updatedGallery.ID.String()); err != nil {
				config.Logger.Error("Error removing gallery from index", zap.Error(err), zap.String("galleryID", updatedGallery.ID.String()))
			}
		}
	}

	utils.InvalidateCacheAsync(gc.RedisClient, "search")

	return c.Status(200).JSON(fiber.Map{
		"message": "Gallery updated successfully",
		"data":    updatedGallery,
	})
}
