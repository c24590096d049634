package controllers

import (
	"fmt"
	"time"

	"photo-portfolio-backend/comments/services"
	"photo-portfolio-backend/config"
	"photo-portfolio-backend/db/models"
	"photo-portfolio-backend/internal/tasks"
	"photo-portfolio-backend/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// CreateComment accepts a visitor comment. New comments always land in the
// pending state; nothing is public until a moderator approves it.
func (cc *CommentController) CreateComment(c *fiber.Ctx) error {
	remoteIP := c.IP()

	if cc.RateLimiter != nil && !cc.RateLimiter.Allow(remoteIP) {
		return c.Status(429).JSON(fiber.Map{
			"message": "Too many comments",
			"error":   "Please wait before submitting another comment.",
		})
	}

	var comment models.Comment
	if err := c.BodyParser(&comment); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"message": "Invalid request",
			"error":   err.Error(),
		})
	}
	comment.RemoteIP = remoteIP

	if validationError := services.ValidateComment(&comment); validationError != "" {
		return c.Status(400).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   validationError,
		})
	}

	targetTitle, err := cc.CommentRepo.ResolveTarget(comment.TargetType, comment.TargetID.String())
	if err != nil {
		return c.Status(404).JSON(fiber.Map{
			"message": "Comment target not found",
			"error":   err.Error(),
		})
	}

	createdComment, err := cc.CommentRepo.CreateComment(&comment)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"message": "Failed to create comment",
			"error":   err.Error(),
		})
	}

	cc.enqueueNotification(createdComment, targetTitle)

	if cc.WsHub != nil {
		target := fmt.Sprintf("%s:%s", createdComment.TargetType, createdComment.TargetID)
		cc.WsHub.BroadcastToTarget(target, websocket.WebSocketMessage{
			Type:      websocket.MessageTypeCommentCreated,
			Payload:   createdComment,
			Timestamp: time.Now(),
			Target:    target,
		})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Comment submitted for moderation",
		"data":    createdComment,
	})
}

func (cc *CommentController) enqueueNotification(comment *models.Comment, targetTitle string) {
	if cc.AsynqClient == nil {
		return
	}

	task, err := tasks.NewCommentNotificationTask(tasks.CommentNotificationPayload{
		CommentID:   comment.ID.String(),
		AuthorName:  comment.AuthorName,
		TargetType:  string(comment.TargetType),
		TargetTitle: targetTitle,
		Body:        comment.Body,
	})
	if err != nil {
		config.Logger.Error("Failed to build comment notification task", zap.Error(err))
		return
	}

	if _, err := cc.AsynqClient.Enqueue(task, asynq.Queue("default")); err != nil {
		config.Logger.Error("Failed to enqueue comment notification",
			zap.Error(err),
			zap.String("commentID", comment.ID.String()),
		)
	}
}
