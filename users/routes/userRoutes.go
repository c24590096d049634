package routes

import (
	"context"

	"photo-portfolio-backend/middleware"
	"photo-portfolio-backend/token"
	"photo-portfolio-backend/users/controllers"
	userRepo "photo-portfolio-backend/users/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

func InitUserRoutes(
	app *fiber.App,
	userRepository userRepo.UserRepository,
	ctx context.Context,
	redisClient *redis.Client,
	tokenMaker token.Maker,
) {
	loginController := &controllers.LoginController{
		UserRepo:    userRepository,
		PasetoMaker: tokenMaker,
		Ctx:         ctx,
		RedisClient: redisClient,
	}

	authRoutes := app.Group("/api/v1/auth")
	authRoutes.Post("/login", loginController.LoginUser)
	authRoutes.Post("/validate-totp", loginController.ValidateTOTP)
	authRoutes.Post("/logout", loginController.LogoutUser)

	protectedRoutes := app.Group("/api/v1/auth", middleware.RequireAuth(tokenMaker))
	protectedRoutes.Get("/me", loginController.Me)
	protectedRoutes.Post("/totp/setup", loginController.SetupTOTP)
	protectedRoutes.Post("/totp/enable", loginController.EnableTOTP)
	protectedRoutes.Post("/totp/disable", loginController.DisableTOTP)

	userRoutes := app.Group("/api/v1/users", middleware.RequireAuth(tokenMaker))
	userRoutes.Post("/", loginController.CreateUser)
}
