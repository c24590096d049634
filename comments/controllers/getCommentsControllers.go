package controllers

import (
	"strings"

	"photo-portfolio-backend/config"
	"photo-portfolio-backend/db/models"
	"photo-portfolio-backend/utils/pagination"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GetCommentsForTarget serves the public thread: approved comments only
func (cc *CommentController) GetCommentsForTarget(c *fiber.Ctx) error {
	targetType := models.CommentTarget(c.Params("targetType"))
	targetID := c.Params("targetId")

	switch targetType {
	case models.TargetGallery, models.TargetImage, models.TargetBlogPost:
	default:
		return c.Status(400).JSON(fiber.Map{"error": "Invalid target type"})
	}

	if _, err := uuid.Parse(targetID); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid target ID format"})
	}

	params := pagination.ParsePaginationParams(c)
	if err := pagination.ValidatePaginationParams(params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	offset := (params.Page - 1) * params.PageSize

	comments, total, err := cc.CommentRepo.GetApprovedCommentsForTarget(targetType, targetID, params.PageSize, offset)
	if err != nil {
		config.Logger.Error("Failed to fetch comments", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch comments"})
	}

	return c.Status(fiber.StatusOK).JSON(pagination.NewPaginatedResponse(c, comments, total, params))
}

// GetFilteredComments is the moderation queue for the admin dashboard
func (cc *CommentController) GetFilteredComments(c *fiber.Ctx) error {
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
	for _, key := range []string{"status", "target_type", "target_id", "author_name", "start_date", "end_date"} {
		if value := cleanQueryParam(c.Query(key)); value != "" {
			filters[key] = value
		}
	}

	offset := (params.Page - 1) * params.PageSize

	comments, total, err := cc.CommentRepo.GetFilteredComments(params.PageSize, offset, filters)
	if err != nil {
		config.Logger.Error("Failed to fetch filtered comments", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch filtered comments"})
	}

	return c.Status(fiber.StatusOK).JSON(pagination.NewPaginatedResponse(c, comments, total, params))
}
