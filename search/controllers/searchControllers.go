package controllers

import (
	"photo-portfolio-backend/search/services"

	"github.com/redis/go-redis/v9"
)

type SearchController struct {
	aggregator  *services.AggregatorService
	redisClient *redis.Client
}

func NewSearchController(aggregator *services.AggregatorService, redisClient *redis.Client) *SearchController {
	return &SearchController{
		aggregator:  aggregator,
		redisClient: redisClient,
	}
}
