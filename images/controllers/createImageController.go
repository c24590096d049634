package controllers

import (
	"photo-portfolio-backend/config"
	"photo-portfolio-backend/db/models"
	"photo-portfolio-backend/images/services"
	"photo-portfolio-backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (ic *ImageController) CreateImage(c *fiber.Ctx) error {
	var image models.Image
	if err := c.BodyParser(&image); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"message": "Invalid request",
			"error":   err.Error(),
		})
	}

	if image.Slug == "" && !image.Title.IsZero() {
		image.Slug = utils.Slugify(image.Title.Resolve(models.LocaleEnglish))
	}
	if image.Status == "" {
		image.Status = models.StatusDraft
	}

	if validationError := services.ValidateImage(&image); validationError != "" {
		return c.Status(400).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   validationError,
		})
	}

	existingImage, _ := ic.ImageRepo.GetImageBySlug(image.Slug)
	if existingImage != nil {
		return c.Status(409).JSON(fiber.Map{
			"message": "Duplicate slug",
			"error":   "An image with this slug already exists.",
			"slug":    image.Slug,
		})
	}

	createdImage, err := ic.ImageRepo.CreateImage(&image)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"message": "Failed to create image",
			"error":   err.Error(),
		})
	}

	if ic.SearchRepo != nil && createdImage.Status == models.StatusPublished {
		if err := ic.SearchRepo.IndexSingleImage(*createdImage); err != nil {
			config.Logger.Error("Error indexing image", zap.Error(err), zap.String("imageID", createdImage.ID.String()))
		}
	}

	utils.InvalidateCacheAsync(ic.RedisClient, "search")

	return c.Status(201).JSON(fiber.Map{
		"message": "Image created successfully",
		"data":    createdImage,
	})
}
