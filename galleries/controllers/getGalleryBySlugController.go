package controllers

import (
	"photo-portfolio-backend/db/models"

	"github.com/gofiber/fiber/v2"
)

// GetGalleryBySlug returns a single gallery with its published images. The
// optional locale query parameter adds resolved display strings so clients
// without a localization layer can render directly.
func (gc *GalleryController) GetGalleryBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Missing slug parameter"})
	}

	gallery, err := gc.GalleryRepo.GetGalleryBySlug(slug)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{
			"message": "Gallery not found",
			"error":   err.Error(),
		})
	}

	response := fiber.Map{
		"message": "Gallery retrieved successfully",
		"data":    gallery,
	}

	if rawLocale := c.Query("locale"); rawLocale != "" {
		locale := models.LocaleCode(rawLocale)
		if !models.IsSupportedLocale(locale) {
			locale = models.LocaleEnglish
		}
		response["resolved"] = fiber.Map{
			"locale":      locale,
			"title":       gallery.Title.Resolve(locale),
			"description": gallery.Description.Resolve(locale),
			"excerpt":     gallery.Excerpt.Resolve(locale),
			"tags":        gallery.Tags.Resolve(locale),
		}
	}

	return c.Status(200).JSON(response)
}
