package controllers

import (
	"strings"

	"photo-portfolio-backend/config"
	"photo-portfolio-backend/db/models"
	"photo-portfolio-backend/utils/pagination"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (ic *ImageController) GetFilteredImages(c *fiber.Ctx) error {
	params := pagination.ParsePaginationParams(c)
	if err := pagination.ValidatePaginationParams(params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	cleanQueryParam := func(param string) string {
		param = strings.TrimSpace(param)
		if param == "" || strings.ToLower(param) == "null" {
			return ""
		}
		return param
	}

	filters := make(map[string]string)
	for _, key := range []string{"status", "gallery_id", "style", "featured", "country", "city", "start_date", "end_date"} {
		if value := cleanQueryParam(c.Query(key)); value != "" {
			filters[key] = value
		}
	}

	offset := (params.Page - 1) * params.PageSize

	images, total, err := ic.ImageRepo.GetFilteredImages(params.PageSize, offset, filters)
	if err != nil {
		config.Logger.Error("Failed to fetch filtered images", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch filtered images"})
	}

	return c.Status(fiber.StatusOK).JSON(pagination.NewPaginatedResponse(c, images, total, params))
}

func (ic *ImageController) GetImageBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Missing slug parameter"})
	}

	image, err := ic.ImageRepo.GetImageBySlug(slug)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{
			"message": "Image not found",
			"error":   err.Error(),
		})
	}

	response := fiber.Map{
		"message": "Image retrieved successfully",
		"data":    image,
	}

	if rawLocale := c.Query("locale"); rawLocale != "" {
		locale := models.LocaleCode(rawLocale)
		if !models.IsSupportedLocale(locale) {
			locale = models.LocaleEnglish
		}
		response["resolved"] = fiber.Map{
			"locale":   locale,
			"title":    image.Title.Resolve(locale),
			"caption":  image.Caption.Resolve(locale),
			"alt_text": image.AltText.Resolve(locale),
			"tags":     image.Tags.Resolve(locale),
		}
	}

	return c.Status(200).JSON(response)
}
