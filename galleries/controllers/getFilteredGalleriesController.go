package controllers

import (
	"strings"

	"photo-portfolio-backend/config"
	"photo-portfolio-backend/utils/pagination"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (gc *GalleryController) GetFilteredGalleries(c *fiber.Ctx) error {
	params := pagination.ParsePaginationParams(c)
	if err := pagination.ValidatePaginationParams(params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// Clean up and sanitize the query parameters
	cleanQueryParam := func(param string) string {
		param = strings.TrimSpace(param)
		if param == "" || strings.ToLower(param) == "null" {
			return ""
		}
		return param
	}

	filters := make(map[string]string)
	for _, key := range []string{"published", "slug", "title", "tag", "start_date", "end_date", "created_by"} {
		if value := cleanQueryParam(c.Query(key)); value != "" {
			filters[key] = value
		}
	}

	offset := (params.Page - 1) * params.PageSize

	galleries, total, err := gc.GalleryRepo.GetFilteredGalleries(params.PageSize, offset, filters)
	if err != nil {
		config.Logger.Error("Failed to fetch filtered galleries", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch filtered galleries"})
	}

	return c.Status(fiber.StatusOK).JSON(pagination.NewPaginatedResponse(c, galleries, total, params))
}
