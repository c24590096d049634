package controllers

import (
	"photo-portfolio-backend/blog/services"
	"photo-portfolio-backend/db/models"
	"photo-portfolio-backend/middleware"
	"photo-portfolio-backend/utils"

	"github.com/gofiber/fiber/v2"
)

func (bc *BlogController) UpdateBlogPost(c *fiber.Ctx) error {
	id := c.Params("id")

	existing, err := bc.BlogRepo.GetBlogPostByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{
			"message": "Blog post not found",
			"error":   err.Error(),
		})
	}

	var payload models.BlogPost
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"message": "Invalid request",
			"error":   err.Error(),
		})
	}

	existing.Title = payload.Title
	existing.Subtitle = payload.Subtitle
	existing.Excerpt = payload.Excerpt
	existing.Body = payload.Body
	existing.Tags = payload.Tags
	existing.FeaturedImageID = payload.FeaturedImageID
	if payload.Slug != "" {
		existing.Slug = payload.Slug
	}
	if payload.Status != "" {
		existing.Status = payload.Status
	}
	if email, ok := c.Locals(middleware.ContextKeyUserEmail).(string); ok && email != "" {
		existing.UpdatedBy = &email
	}

	if validationError := services.ValidateBlogPost(existing); validationError != "" {
		return c.Status(400).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   validationError,
		})
	}

	existing.ReadingTime = services.EstimateReadingTime(existing.Body)

	updatedPost, err := bc.BlogRepo.UpdateBlogPost(existing)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"message": "Failed to update blog post",
			"error":   err.Error(),
		})
	}

	if updatedPost.Status == models.StatusPublished {
		bc.indexPublishedPost(c, updatedPost)
	} else {
		bc.removePostFromIndexes(c, updatedPost.ID.String())
	}

	utils.InvalidateCacheAsync(bc.RedisClient, "search")

	return c.Status(200).JSON(fiber.Map{
		"message": "Blog post updated successfully",
		"data":    updatedPost,
	})
}

func (bc *BlogController) DeleteBlogPost(c *fiber.Ctx) error {
	id := c.Params("id")

	post, err := bc.BlogRepo.GetBlogPostByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{
			"message": "Blog post not found",
			"error":   err.Error(),
		})
	}

	if err := bc.BlogRepo.DeleteBlogPost(id); err != nil {
		return c.Status(500).JSON(fiber.Map{
			"message": "Failed to delete blog post",
			"error":   err.Error(),
		})
	}

	bc.removePostFromIndexes(c, post.ID.String())

	utils.InvalidateCacheAsync(bc.RedisClient, "search")

	return c.Status(200).JSON(fiber.Map{
		"message": "Blog post deleted successfully",
	})
}
