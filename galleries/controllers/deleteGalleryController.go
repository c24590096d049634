package controllers

import (
	"photo-portfolio-backend/config"
	"photo-portfolio-backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (gc *GalleryController) DeleteGallery(c *fiber.Ctx) error {
	id := c.Params("id")

	gallery, err := gc.GalleryRepo.GetGalleryByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{
			"message": "Gallery not found",
			"error":   err.Error(),
		})
	}

	if err := gc.GalleryRepo.DeleteGallery(id); err != nil {
		return c.Status(500).JSON(fiber.Map{
			"message": "Failed to delete gallery",
			"error":   err.Error(),
		})
	}

	if gc.SearchRepo != nil {
		if err := gc.SearchRepo.DeleteGallery(gallery.ID.String()); err != nil {
			config.Logger.Error("Error removing gallery from index", zap.Error(err), zap.String("galleryID", gallery.ID.String()))
		}
	}

	utils.InvalidateCacheAsync(gc.RedisClient, "search")

	return c.Status(200).JSON(fiber.Map{
		"message": "Gallery deleted successfully",
	})
}
