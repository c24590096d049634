package controllers

import (
	"fmt"
	"time"

	"photo-portfolio-backend/config"
	"photo-portfolio-backend/db/models"
	"photo-portfolio-backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ExportGalleryPDF renders the gallery as a printable portfolio document,
// resolved for the requested locale.
func (gc *GalleryController) ExportGalleryPDF(c *fiber.Ctx) error {
	id := c.Params("id")

	gallery, err := gc.GalleryRepo.GetGalleryByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{
			"message": "Gallery not found",
			"error":   err.Error(),
		})
	}

	locale := models.LocaleCode(c.Query("locale", string(models.LocaleEnglish)))
	if !models.IsSupportedLocale(locale) {
		locale = models.LocaleEnglish
	}

	filename := fmt.Sprintf("%s_%s_%s.pdf", gallery.Slug, locale, time.Now().Format("20060102_150405"))

	pdfPath, err := utils.GenerateGalleryPortfolio(*gallery, locale, filename)
	if err != nil {
		config.Logger.Error("Failed to generate gallery portfolio PDF",
			zap.Error(err),
			zap.String("galleryID", gallery.ID.String()),
			zap.String("locale", string(locale)),
		)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate PDF"})
	}

	return c.Status(200).JSON(fiber.Map{
		"message":  "Portfolio PDF generated successfully",
		"file_url": utils.GetDownloadURL(c, pdfPath),
	})
}
