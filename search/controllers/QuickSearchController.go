package controllers

import (
	dbmodels "photo-portfolio-backend/db/models"
	searchmodels "photo-portfolio-backend/search/models"
	"photo-portfolio-backend/search/services"

	"github.com/gofiber/fiber/v2"
)

// QuickSearchController backs the header quick-search widget:
// GET /api/v1/search/quick?q=<string>&locale=<en|ta>
//
// Scope is always "all" and the per-collection limit is fixed at 8; the
// response is flattened to at most 6 items (2 per category) with a
// "view N more results" count.
func (c *SearchController) QuickSearchController(ctx *fiber.Ctx) error {
	queryString := ctx.Query("q")
	locale := dbmodels.LocaleCode(ctx.Query("locale", string(dbmodels.LocaleEnglish)))

	results, failures, err := c.aggregator.Search(ctx.Context(), searchmodels.Query{
		Term:   queryString,
		Locale: locale,
		Scope:  searchmodels.ScopeAll,
		Limit:  services.QuickSearchLimit,
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Search failed",
		})
	}

	view := searchmodels.BuildQuickView(results, searchmodels.QuickViewPerCategory, searchmodels.QuickViewMaxItems)

	response := fiber.Map{
		"items":         view.Items,
		"total_results": view.TotalResults,
		"more_results":  view.MoreResults,
	}
	if len(failures) > 0 {
		degraded := make([]searchmodels.Collection, 0, len(failures))
		for _, failure := range failures {
			degraded = append(degraded, failure.Collection)
		}
		response["degraded"] = degraded
	}

	return ctx.JSON(response)
}
