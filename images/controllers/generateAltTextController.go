package controllers

import (
	"io"
	"net/http"
	"time"

	"photo-portfolio-backend/config"
	"photo-portfolio-backend/db/models"
	"photo-portfolio-backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// 20MB, matches the Gemini inline data ceiling
const maxAltTextImageBytes = 20 << 20

// GenerateAltText fetches the original asset and asks Gemini for bilingual
// alt text. The result is stored on the image unless dry_run=true.
func (ic *ImageController) GenerateAltText(c *fiber.Ctx) error {
	if ic.GeminiService == nil {
		return c.Status(503).JSON(fiber.Map{"error": "Alt text generation is not configured"})
	}

	id := c.Params("id")

	image, err := ic.ImageRepo.GetImageByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{
			"message": "Image not found",
			"error":   err.Error(),
		})
	}

	client := &http.Client{Timeout: 30 * time.Second}
	req, err := http.NewRequestWithContext(c.Context(), http.MethodGet, image.OriginalURL, nil)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch image asset"})
	}
	resp, err := client.Do(req)
	if err != nil {
		config.Logger.Error("Failed to fetch image asset for alt text",
			zap.Error(err),
			zap.String("imageID", image.ID.String()),
			zap.String("url", image.OriginalURL),
		)
		return c.Status(502).JSON(fiber.Map{"error": "Failed to fetch image asset"})
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.Status(502).JSON(fiber.Map{"error": "Image asset returned non-OK status"})
	}

	imageBytes, err := io.ReadAll(io.LimitReader(resp.Body, maxAltTextImageBytes))
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": "Failed to read image asset"})
	}

	mimeType := resp.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	altText, err := ic.GeminiService.GenerateAltText(c.Context(), imageBytes, mimeType)
	if err != nil {
		config.Logger.Error("Alt text generation failed",
			zap.Error(err),
			zap.String("imageID", image.ID.String()),
		)
		return c.Status(502).JSON(fiber.Map{"error": "Alt text generation failed"})
	}

	if c.QueryBool("dry_run") {
		return c.Status(200).JSON(fiber.Map{
			"message": "Alt text generated (not saved)",
			"data":    altText,
		})
	}

	image.AltText = altText
	updatedImage, err := ic.ImageRepo.UpdateImage(image)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"message": "Failed to save generated alt text",
			"error":   err.Error(),
		})
	}

	if ic.SearchRepo != nil && updatedImage.Status == models.StatusPublished {
		if err := ic.SearchRepo.UpdateImage(*updatedImage); err != nil {
			config.Logger.Error("Error reindexing image after alt text update", zap.Error(err), zap.String("imageID", updatedImage.ID.String()))
		}
	}

	utils.InvalidateCacheAsync(ic.RedisClient, "search")

	return c.Status(200).JSON(fiber.Map{
		"message": "Alt text generated successfully",
		"data":    updatedImage,
	})
}
