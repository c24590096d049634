package controllers

import (
	"photo-portfolio-backend/config"
	"photo-portfolio-backend/middleware"
	"photo-portfolio-backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type publishRequest struct {
	Published bool `json:"published"`
}

// PublishGallery toggles the published flag. Publishing indexes the gallery
// and its published images; unpublishing removes them from search.
func (gc *GalleryController) PublishGallery(c *fiber.Ctx) error {
	id := c.Params("id")

	var req publishRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"message": "Invalid request",
			"error":   err.Error(),
		})
	}

	updatedBy := ""
	if email, ok := c.Locals(middleware.ContextKeyUserEmail).(string); ok {
		updatedBy = email
	}

	gallery, err := gc.GalleryRepo.SetPublished(id, req.Published, updatedBy)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{
			"message": "Gallery not found",
			"error":   err.Error(),
		})
	}

	if gc.SearchRepo != nil {
		if req.Published {
			if err := gc.SearchRepo.IndexSingleGallery(*gallery); err != nil {
				config.Logger.Error("Error indexing gallery", zap.Error(err), zap.String("galleryID", gallery.ID.String()))
			}
		} else {
			if err := gc.SearchRepo.DeleteGallery(gallery.ID.String()); err != nil {
				config.Logger.Error("Error removing gallery from index", zap.Error(err), zap.String("galleryID", gallery.ID.String()))
			}
		}
	}

	utils.InvalidateCacheAsync(gc.RedisClient, "search")

	return c.Status(200).JSON(fiber.Map{
		"message": "Gallery publication state updated",
		"data":    gallery,
	})
}
