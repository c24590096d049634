package controllers

import (
	"strings"

	"photo-portfolio-backend/config"
	"photo-portfolio-backend/db/models"
	"photo-portfolio-backend/utils/pagination"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (bc *BlogController) GetFilteredBlogPosts(c *fiber.Ctx) error {
	params := pagination.ParsePaginationParams(c)
	if err := pagination.ValidatePaginationParams(params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	cleanQueryParam := func(param string) string {
		param = strings.TrimSpace(param)
		if param == "" || strings.ToLower(param) == "null" {
			return ""
		}
		return param
	}

	filters := make(map[string]string)
	for _, key := range []string{"status", "slug", "tag", "start_date", "end_date", "created_by"} {
		if value := cleanQueryParam(c.Query(key)); value != "" {
			filters[key] = value
		}
	}

	offset := (params.Page - 1) * params.PageSize

	posts, total, err := bc.BlogRepo.GetFilteredBlogPosts(params.PageSize, offset, filters)
	if err != nil {
		config.Logger.Error("Failed to fetch filtered blog posts", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch filtered blog posts"})
	}

	return c.Status(fiber.StatusOK).JSON(pagination.NewPaginatedResponse(c, posts, total, params))
}

func (bc *BlogController) GetBlogPostBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Missing slug parameter"})
	}

	post, err := bc.BlogRepo.GetBlogPostBySlug(slug)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{
			"message": "Blog post not found",
			"error":   err.Error(),
		})
	}

	response := fiber.Map{
		"message": "Blog post retrieved successfully",
		"data":    post,
	}

	if rawLocale := c.Query("locale"); rawLocale != "" {
		locale := models.LocaleCode(rawLocale)
		if !models.IsSupportedLocale(locale) {
			locale = models.LocaleEnglish
		}
		response["resolved"] = fiber.Map{
			"locale":   locale,
			"title":    post.Title.Resolve(locale),
			"subtitle": post.Subtitle.Resolve(locale),
			"excerpt":  post.Excerpt.Resolve(locale),
			"body":     post.Body.Resolve(locale),
			"tags":     post.Tags.Resolve(locale),
		}
	}

	return c.Status(200).JSON(response)
}

// GetRelatedBlogPosts returns up to five published posts sharing tags with
// the given post, from the Elasticsearch mirror.
func (bc *BlogController) GetRelatedBlogPosts(c *fiber.Ctx) error {
	slug := c.Params("slug")

	post, err := bc.BlogRepo.GetBlogPostBySlug(slug)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{
			"message": "Blog post not found",
			"error":   err.Error(),
		})
	}

	if bc.RelatedPosts == nil {
		return c.Status(200).JSON(fiber.Map{
			"message": "Related posts retrieved successfully",
			"data":    []interface{}{},
		})
	}

	tags := post.Tags.Resolve(models.LocaleEnglish)
	tags = append(tags, post.Tags.Resolve(models.LocaleTamil)...)

	related := bc.RelatedPosts.GetRelatedPosts(c.Context(), post.ID.String(), tags, c.QueryInt("limit", 5))

	return c.Status(200).JSON(fiber.Map{
		"message": "Related posts retrieved successfully",
		"data":    related,
	})
}
