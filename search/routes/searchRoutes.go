package routes

import (
	"photo-portfolio-backend/search/controllers"

	"github.com/gofiber/fiber/v2"
)

func InitSearchRoutes(app *fiber.App, controller *controllers.SearchController) {
	api := app.Group("/api/v1/search")

	api.Get("/", controller.SearchContentController)
	api.Get("/quick", controller.QuickSearchController)
}
