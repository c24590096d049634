package controllers

import (
	"photo-portfolio-backend/blog/services"
	"photo-portfolio-backend/config"
	"photo-portfolio-backend/db/models"
	"photo-portfolio-backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (bc *BlogController) CreateBlogPost(c *fiber.Ctx) error {
	var post models.BlogPost
	if err := c.BodyParser(&post); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"message": "Invalid request",
			"error":   err.Error(),
		})
	}

	if post.Slug == "" && !post.Title.IsZero() {
		post.Slug = utils.Slugify(post.Title.Resolve(models.LocaleEnglish))
	}
	if post.Status == "" {
		post.Status = models.StatusDraft
	}

	if validationError := services.ValidateBlogPost(&post); validationError != "" {
		return c.Status(400).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   validationError,
		})
	}

	post.ReadingTime = services.EstimateReadingTime(post.Body)

	existingPost, _ := bc.BlogRepo.GetBlogPostBySlug(post.Slug)
	if existingPost != nil {
		return c.Status(409).JSON(fiber.Map{
			"message": "Duplicate slug",
			"error":   "A blog post with this slug already exists.",
			"slug":    post.Slug,
		})
	}

	createdPost, err := bc.BlogRepo.CreateBlogPost(&post)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"message": "Failed to create blog post",
			"error":   err.Error(),
		})
	}

	if createdPost.Status == models.StatusPublished {
		bc.indexPublishedPost(c, createdPost)
	}

	utils.InvalidateCacheAsync(bc.RedisClient, "search")

	return c.Status(201).JSON(fiber.Map{
		"message": "Blog post created successfully",
		"data":    createdPost,
	})
}

// indexPublishedPost pushes a post into both search backends: bleve for
// free-text search and Elasticsearch for the related-posts sidebar.
func (bc *BlogController) indexPublishedPost(c *fiber.Ctx, post *models.BlogPost) {
	if bc.SearchRepo != nil {
		if err := bc.SearchRepo.IndexSingleBlogPost(*post); err != nil {
			config.Logger.Error("Error indexing blog post", zap.Error(err), zap.String("postID", post.ID.String()))
		}
	}
	if bc.RelatedPosts != nil {
		if err := bc.RelatedPosts.IndexBlogPost(c.Context(), post); err != nil {
			config.Logger.Error("Error mirroring blog post to Elasticsearch", zap.Error(err), zap.String("postID", post.ID.String()))
		}
	}
}

func (bc *BlogController) removePostFromIndexes(c *fiber.Ctx, postID string) {
	if bc.SearchRepo != nil {
		if err := bc.SearchRepo.DeleteBlogPost(postID); err != nil {
			config.Logger.Error("Error removing blog post from index", zap.Error(err), zap.String("postID", postID))
		}
	}
	if bc.RelatedPosts != nil {
		if err := bc.RelatedPosts.DeleteBlogPost(c.Context(), postID); err != nil {
			config.Logger.Error("Error removing blog post from Elasticsearch", zap.Error(err), zap.String("postID", postID))
		}
	}
}
