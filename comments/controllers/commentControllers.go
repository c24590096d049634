package controllers

import (
	commentRepo "photo-portfolio-backend/comments/repositories"
	commentServices "photo-portfolio-backend/comments/services"
	"photo-portfolio-backend/websocket"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CommentController struct {
	CommentRepo commentRepo.CommentRepository
	RateLimiter *commentServices.CommentRateLimiter
	AsynqClient *asynq.Client
	WsHub       *websocket.Hub
	DB          *gorm.DB
	RedisClient *redis.Client
}
