package routes

import (
	"photo-portfolio-backend/comments/controllers"
	commentRepo "photo-portfolio-backend/comments/repositories"
	commentServices "photo-portfolio-backend/comments/services"
	"photo-portfolio-backend/middleware"
	"photo-portfolio-backend/token"
	"photo-portfolio-backend/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func InitCommentRoutes(
	app *fiber.App,
	db *gorm.DB,
	commentRepository commentRepo.CommentRepository,
	asynqClient *asynq.Client,
	wsHub *websocket.Hub,
	redisClient *redis.Client,
	tokenMaker token.Maker,
) {
	commentController := &controllers.CommentController{
		CommentRepo: commentRepository,
		RateLimiter: commentServices.NewCommentRateLimiter(),
		AsynqClient: asynqClient,
		WsHub:       wsHub,
		DB:          db,
		RedisClient: redisClient,
	}

	publicRoutes := app.Group("/api/v1/comments")
	publicRoutes.Post("/", commentController.CreateComment)
	publicRoutes.Get("/:targetType/:targetId", commentController.GetCommentsForTarget)

	adminRoutes := app.Group("/api/v1/comments", middleware.RequireAuth(tokenMaker))
	adminRoutes.Get("/", commentController.GetFilteredComments)
	adminRoutes.Patch("/:id/moderate", commentController.ModerateComment)
	adminRoutes.Delete("/:id", commentController.DeleteComment)
}
