package main

import (
	"context"

	"photo-portfolio-backend/config"
	"photo-portfolio-backend/middleware"
	"photo-portfolio-backend/seeds"
	"photo-portfolio-backend/token"
	"photo-portfolio-backend/utils"

	// Repositories
	blog_repositories "photo-portfolio-backend/blog/repositories"
	comments_repositories "photo-portfolio-backend/comments/repositories"
	galleries_repositories "photo-portfolio-backend/galleries/repositories"
	images_repositories "photo-portfolio-backend/images/repositories"
	users_repositories "photo-portfolio-backend/users/repositories"

	// Routes
	blog_routes "photo-portfolio-backend/blog/routes"
	comment_routes "photo-portfolio-backend/comments/routes"
	gallery_routes "photo-portfolio-backend/galleries/routes"
	image_routes "photo-portfolio-backend/images/routes"
	seo_routes "photo-portfolio-backend/seo/routes"
	user_routes "photo-portfolio-backend/users/routes"

	// Search
	searchControllers "photo-portfolio-backend/search/controllers"
	searchRepositories "photo-portfolio-backend/search/repositories"
	searchRoutes "photo-portfolio-backend/search/routes"
	searchServices "photo-portfolio-backend/search/services"

	// Services
	blog_services "photo-portfolio-backend/blog/services"
	internal_services "photo-portfolio-backend/internal/services"

	"photo-portfolio-backend/internal/bootstrap"
	"photo-portfolio-backend/internal/tasks"

	// WebSocket
	"photo-portfolio-backend/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

func main() {
	// Initialize Zap logger
	config.InitLogger()

	// Load environment variables
	if err := godotenv.Load(".env"); err != nil {
		config.Logger.Warn("No .env file found, relying on process environment")
	}

	app := fiber.New()

	// Apply CORS middleware from middleware package
	middleware.InitCors(app)

	// Initialize database and configs
	db := config.ConfigureDatabase()
	port := config.GetEnv("PORT")
	if port == "" {
		port = "8080"
	}
	ctx := context.Background()

	redisClient := config.InitRedisServer(ctx)

	// Asynq uses its own Redis connection
	redisAddr := config.GetEnv("REDIS_ADDRESS")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
		config.Logger.Warn("REDIS_ADDRESS not set, using default: localhost:6379")
	}
	asynqRedisOpt := asynq.RedisClientOpt{
		Addr:     redisAddr,
		Password: config.GetEnv("REDIS_PASSWORD"),
		DB:       0,
	}
	asynqClient := asynq.NewClient(asynqRedisOpt)
	defer asynqClient.Close()

	esClient := config.InitElasticsearch()

	tokenKey := config.GetEnv("TOKEN_SYMMETRIC_KEY")
	tokenMaker, err := token.NewPasetoMaker(tokenKey)
	if err != nil {
		config.Logger.Fatal("Cannot create token maker", zap.Error(err))
	}

	indexPath := config.GetEnv("BLEVE_INDEX_PATH")
	if indexPath == "" {
		indexPath = "./bleve_data"
		config.Logger.Warn("BLEVE_INDEX_PATH not set, using default: ./bleve_data")
	}

	// Gemini is used for bilingual alt-text generation
	geminiService, err := internal_services.NewGeminiService(config.GetGeminiAPIKey())
	if err != nil {
		config.Logger.Fatal("Cannot create Gemini service", zap.Error(err))
	}

	// Initialize the mailer for comment notifications
	utils.InitializeMailer()

	// ------ WebSocket Hub for live comment updates ------
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Serve static files (excel exports, PDF portfolios)
	app.Static("/public", "./public")

	// Search index layer
	indexingService := searchServices.NewIndexingService(config.Logger, indexPath)
	searchServiceRepo, searchInterfaceRepo := searchRepositories.NewSearchRepository(indexingService)

	// Repositories
	galleryRepo := galleries_repositories.NewGalleryRepository(db)
	imageRepo := images_repositories.NewImageRepository(db)
	blogRepo := blog_repositories.NewBlogPostRepository(db)
	commentRepo := comments_repositories.NewCommentRepository(db)
	userRepo := users_repositories.NewUserRepository(db)

	// Elasticsearch mirror for related-post lookups
	relatedPosts := blog_services.NewRelatedPostsService(esClient)
	if err := relatedPosts.CreateIndex(ctx); err != nil {
		config.Logger.Error("Failed to create related-posts index", zap.Error(err))
	}

	// Routes
	gallery_routes.InitGalleryRoutes(app, db, galleryRepo, searchInterfaceRepo, redisClient, tokenMaker)
	image_routes.InitImageRoutes(app, db, imageRepo, searchInterfaceRepo, geminiService, redisClient, tokenMaker)
	blog_routes.InitBlogRoutes(app, db, blogRepo, searchInterfaceRepo, relatedPosts, redisClient, tokenMaker)
	comment_routes.InitCommentRoutes(app, db, commentRepo, asynqClient, wsHub, redisClient, tokenMaker)
	user_routes.InitUserRoutes(app, userRepo, ctx, redisClient, tokenMaker)
	seo_routes.InitSeoRoutes(app, galleryRepo, imageRepo, blogRepo)

	// Search routes
	aggregator := searchServices.NewAggregatorService(searchServiceRepo, config.Logger)
	searchController := searchControllers.NewSearchController(aggregator, redisClient)
	searchRoutes.InitSearchRoutes(app, searchController)

	// WebSocket route with token validation
	wsHandler := websocket.NewWsHandler(wsHub, tokenMaker)
	app.Get("/ws", wsHandler.HandleWebSocket)

	// Background workers: comment notifications and search reindexing
	taskHandler := &tasks.TaskHandler{
		GalleryRepo: galleryRepo,
		ImageRepo:   imageRepo,
		BlogRepo:    blogRepo,
		SearchRepo:  searchInterfaceRepo,
	}
	asynqServer := tasks.StartWorker(asynqRedisOpt, taskHandler)
	defer asynqServer.Shutdown()

	// Background cleanup of expired export files
	go utils.RunScheduledCleanup(redisClient)

	// Nightly full reindex catches anything the incremental updates missed
	reindexCron := cron.New()
	_, err = reindexCron.AddFunc("0 3 * * *", func() {
		if _, err := asynqClient.Enqueue(tasks.NewSearchReindexTask()); err != nil {
			config.Logger.Error("Failed to enqueue nightly reindex", zap.Error(err))
		}
	})
	if err != nil {
		config.Logger.Error("Failed to schedule nightly reindex", zap.Error(err))
	}
	reindexCron.Start()

	// Seed initial data
	if err := seeds.SeedAdminUser(db); err != nil {
		config.Logger.Error("Admin user seeding failed", zap.Error(err))
	}
	if config.GetEnv("SEED_SAMPLE_DATA") == "true" {
		if err := seeds.SeedSampleContent(db); err != nil {
			config.Logger.Error("Sample content seeding failed", zap.Error(err))
		}
	}

	// Rebuild search indexes from the database on startup
	bootstrap.IndexSearchData(ctx, galleryRepo, imageRepo, blogRepo, searchInterfaceRepo)

	// Start the application
	config.Logger.Info("Server starting", zap.String("port", port))
	config.Logger.Fatal("Server failed", zap.String("port", port), zap.Error(app.Listen(":"+port)))
}
