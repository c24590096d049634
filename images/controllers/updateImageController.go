package controllers

import (
	"photo-portfolio-backend/config"
	"photo-portfolio-backend/db/models"
	"photo-portfolio-backend/images/services"
	"photo-portfolio-backend/middleware"
	"photo-portfolio-backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (ic *ImageController) UpdateImage(c *fiber.Ctx) error {
	id := c.Params("id")

	existing, err := ic.ImageRepo.GetImageByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{
			"message": "Image not found",
			"error":   err.Error(),
		})
	}

	var payload models.Image
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"message": "Invalid request",
			"error":   err.Error(),
		})
	}

	existing.Title = payload.Title
	existing.Description = payload.Description
	existing.Caption = payload.Caption
	existing.AltText = payload.AltText
	existing.Tags = payload.Tags
	existing.LocationName = payload.LocationName
	existing.City = payload.City
	existing.Region = payload.Region
	existing.Country = payload.Country
	existing.Latitude = payload.Latitude
	existing.Longitude = payload.Longitude
	existing.Style = payload.Style
	existing.Featured = payload.Featured
	existing.Variants = payload.Variants
	existing.Exif = payload.Exif
	if payload.Slug != "" {
		existing.Slug = payload.Slug
	}
	if payload.Status != "" {
		existing.Status = payload.Status
	}
	if payload.OriginalURL != "" {
		existing.OriginalURL = payload.OriginalURL
	}
	if email, ok := c.Locals(middleware.ContextKeyUserEmail).(string); ok && email != "" {
		existing.UpdatedBy = &email
	}

	if validationError := services.ValidateImage(existing); validationError != "" {
		return c.Status(400).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   validationError,
		})
	}

	updatedImage, err := ic.ImageRepo.UpdateImage(existing)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"message": "Failed to update image",
			"error":   err.Error(),
		})
	}

	// Only published images are searchable; anything else leaves the index
	if ic.SearchRepo != nil {
		if updatedImage.Status == models.StatusPublished {
			if err := ic.SearchRepo.UpdateImage(*updatedImage); err != nil {
				config.Logger.Error("Error reindexing image", zap.Error(err), zap.String("imageID", updatedImage.ID.String()))
			}
		} else {
			if err := ic.SearchRepo.DeleteImage(updatedImage.ID.String()); err != nil {
				config.Logger.Error("Error removing image from index", zap.Error(err), zap.String("imageID", updatedImage.ID.String()))
			}
		}
	}

	utils.InvalidateCacheAsync(ic.RedisClient, "search")

	return c.Status(200).JSON(fiber.Map{
		"message": "Image updated successfully",
		"data":    updatedImage,
	})
}

func (ic *ImageController) DeleteImage(c *fiber.Ctx) error {
	id := c.Params("id")

	image, err := ic.ImageRepo.GetImageByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{
			"message": "Image not found",
			"error":   err.Error(),
		})
	}

	if err := ic.ImageRepo.DeleteImage(id); err != nil {
		return c.Status(500).JSON(fiber.Map{
			"message": "Failed to delete image",
			"error":   err.Error(),
		})
	}

	if ic.SearchRepo != nil {
		if err := ic.SearchRepo.DeleteImage(image.ID.String()); err != nil {
			config.Logger.Error("Error removing image from index", zap.Error(err), zap.String("imageID", image.ID.String()))
		}
	}

	utils.InvalidateCacheAsync(ic.RedisClient, "search")

	return c.Status(200).JSON(fiber.Map{
		"message": "Image deleted successfully",
	})
}
