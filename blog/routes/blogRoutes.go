package routes

import (
	"photo-portfolio-backend/blog/controllers"
	blogRepo "photo-portfolio-backend/blog/repositories"
	blogServices "photo-portfolio-backend/blog/services"
	"photo-portfolio-backend/middleware"
	searchRepo "photo-portfolio-backend/search/repositories"
	"photo-portfolio-backend/token"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func InitBlogRoutes(
	app *fiber.App,
	db *gorm.DB,
	blogRepository blogRepo.BlogPostRepository,
	searchRepository searchRepo.SearchRepositoryInterface,
	relatedPosts *blogServices.RelatedPostsService,
	redisClient *redis.Client,
	tokenMaker token.Maker,
) {
	blogController := &controllers.BlogController{
		BlogRepo:     blogRepository,
		SearchRepo:   searchRepository,
		RelatedPosts: relatedPosts,
		DB:           db,
		RedisClient:  redisClient,
	}

	publicRoutes := app.Group("/api/v1/posts")
	publicRoutes.Get("/", blogController.GetFilteredBlogPosts)
	publicRoutes.Get("/:slug", blogController.GetBlogPostBySlug)
	publicRoutes.Get("/:slug/related", blogController.GetRelatedBlogPosts)

	adminRoutes := app.Group("/api/v1/posts", middleware.RequireAuth(tokenMaker))
	adminRoutes.Post("/", blogController.CreateBlogPost)
	adminRoutes.Put("/:id", blogController.UpdateBlogPost)
	adminRoutes.Delete("/:id", blogController.DeleteBlogPost)
}
