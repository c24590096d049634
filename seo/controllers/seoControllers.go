package controllers

import (
	"photo-portfolio-backend/config"
	"photo-portfolio-backend/db/models"
	seoServices "photo-portfolio-backend/seo/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SeoController struct {
	MetaService *seoServices.MetaService
}

func NewSeoController(metaService *seoServices.MetaService) *SeoController {
	return &SeoController{MetaService: metaService}
}

// GetPageMeta returns head-tag metadata for a content page.
// GET /api/v1/seo/meta?type=gallery&slug=...&locale=ta
func (sc *SeoController) GetPageMeta(c *fiber.Ctx) error {
	contentType := c.Query("type")
	slug := c.Query("slug")
	if contentType == "" || slug == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Query parameters 'type' and 'slug' are required",
		})
	}

	locale := models.LocaleEnglish
	if rawLocale := c.Query("locale"); rawLocale != "" {
		if !models.IsSupportedLocale(models.LocaleCode(rawLocale)) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Unsupported locale: " + rawLocale,
			})
		}
		locale = models.LocaleCode(rawLocale)
	}

	var (
		meta *seoServices.PageMeta
		err  error
	)
	switch contentType {
	case "gallery":
		meta, err = sc.MetaService.BuildGalleryMeta(slug, locale)
	case "image":
		meta, err = sc.MetaService.BuildImageMeta(slug, locale)
	case "post":
		meta, err = sc.MetaService.BuildBlogPostMeta(slug, locale)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Unknown content type: " + contentType,
		})
	}
	if err != nil {
		config.Logger.Warn("Failed to build page metadata",
			zap.String("type", contentType),
			zap.String("slug", slug),
			zap.Error(err))
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Content not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": meta,
	})
}
