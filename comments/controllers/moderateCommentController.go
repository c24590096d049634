package controllers

import (
	"fmt"
	"time"

	"photo-portfolio-backend/comments/services"
	"photo-portfolio-backend/db/models"
	"photo-portfolio-backend/middleware"
	"photo-portfolio-backend/websocket"

	"github.com/gofiber/fiber/v2"
)

type moderationRequest struct {
	Status models.CommentStatus `json:"status"`
}

func (cc *CommentController) ModerateComment(c *fiber.Ctx) error {
	id := c.Params("id")

	var req moderationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"message": "Invalid request",
			"error":   err.Error(),
		})
	}

	if !services.IsValidModerationStatus(req.Status) {
		return c.Status(400).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   "Status must be 'approved' or 'rejected'.",
		})
	}

	moderatedBy := ""
	if email, ok := c.Locals(middleware.ContextKeyUserEmail).(string); ok {
		moderatedBy = email
	}

	comment, err := cc.CommentRepo.ModerateComment(id, req.Status, moderatedBy)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{
			"message": "Comment not found",
			"error":   err.Error(),
		})
	}

	if cc.WsHub != nil {
		target := fmt.Sprintf("%s:%s", comment.TargetType, comment.TargetID)
		cc.WsHub.BroadcastToTarget(target, websocket.WebSocketMessage{
			Type:      websocket.MessageTypeCommentModerated,
			Payload:   comment,
			Timestamp: time.Now(),
			Target:    target,
		})
	}

	return c.Status(200).JSON(fiber.Map{
		"message": "Comment moderated successfully",
		"data":    comment,
	})
}

func (cc *CommentController) DeleteComment(c *fiber.Ctx) error {
	id := c.Params("id")

	if _, err := cc.CommentRepo.GetCommentByID(id); err != nil {
		return c.Status(404).JSON(fiber.Map{
			"message": "Comment not found",
			"error":   err.Error(),
		})
	}

	if err := cc.CommentRepo.DeleteComment(id); err != nil {
		return c.Status(500).JSON(fiber.Map{
			"message": "Failed to delete comment",
			"error":   err.Error(),
		})
	}

	return c.Status(200).JSON(fiber.Map{
		"message": "Comment deleted successfully",
	})
}
