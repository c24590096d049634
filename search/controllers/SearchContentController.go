package controllers

import (
	"encoding/json"
	"time"

	"photo-portfolio-backend/config"
	dbmodels "photo-portfolio-backend/db/models"
	searchmodels "photo-portfolio-backend/search/models"
	"photo-portfolio-backend/search/services"
	"photo-portfolio-backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const searchCacheTTL = 60 * time.Second

// searchResponse is the wire shape of GET /api/v1/search. Degraded lists
// collections whose index query failed, so the frontend can tell "no
// matches" apart from "search partially unavailable".
type searchResponse struct {
	Results  *searchmodels.SearchResultSet `json:"results"`
	Degraded []searchmodels.Collection     `json:"degraded,omitempty"`
}

// SearchContentController handles the full search page:
// GET /api/v1/search?q=<string>&locale=<en|ta>&type=<all|galleries|images|blog>&limit=<int>
func (c *SearchController) SearchContentController(ctx *fiber.Ctx) error {
	queryString := ctx.Query("q")
	locale := dbmodels.LocaleCode(ctx.Query("locale", string(dbmodels.LocaleEnglish)))

	scope, err := searchmodels.ParseScope(ctx.Query("type"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid 'type' value",
		})
	}

	limit := ctx.QueryInt("limit", services.DefaultSearchLimit)
	if limit < 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid 'limit' value",
		})
	}

	// Serve from cache when an identical query was answered recently
	cacheKey := utils.SearchCacheKey(queryString, string(locale), string(scope), limit)
	if cached, err := c.redisClient.Get(ctx.Context(), cacheKey).Result(); err == nil {
		ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return ctx.SendString(cached)
	}

	results, failures, err := c.aggregator.Search(ctx.Context(), searchmodels.Query{
		Term:   queryString,
		Locale: locale,
		Scope:  scope,
		Limit:  limit,
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Search failed",
		})
	}

	response := searchResponse{Results: results}
	for _, failure := range failures {
		response.Degraded = append(response.Degraded, failure.Collection)
	}

	// Only fully healthy responses are cached; a degraded result set must
	// not outlive the outage it reflects.
	if len(failures) == 0 {
		if body, err := json.Marshal(response); err == nil {
			if err := c.redisClient.Set(ctx.Context(), cacheKey, body, searchCacheTTL).Err(); err != nil {
				config.Logger.Warn("Failed to cache search response",
					zap.String("key", cacheKey),
					zap.Error(err))
			}
		}
	}

	return ctx.JSON(response)
}
