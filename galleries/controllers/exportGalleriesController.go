package controllers

import (
	"photo-portfolio-backend/config"
	"photo-portfolio-backend/db/models"
	"photo-portfolio-backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// galleryExportRow is the flat shape written into the Excel sheet; field
// names must match the header list passed to GenerateExcel.
type galleryExportRow struct {
	Slug      string
	Title     string
	TitleTa   string
	Published bool
	Images    int
	CreatedBy string
	CreatedAt string
}

func (gc *GalleryController) ExportGalleries(c *fiber.Ctx) error {
	galleries, _, err := gc.GalleryRepo.GetFilteredGalleries(10000, 0, map[string]string{})
	if err != nil {
		config.Logger.Error("Failed to fetch galleries for export", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch galleries for export"})
	}

	rows := make([]galleryExportRow, 0, len(galleries))
	for _, g := range galleries {
		rows = append(rows, galleryExportRow{
			Slug:      g.Slug,
			Title:     g.Title.Resolve(models.LocaleEnglish),
			TitleTa:   g.Title.Resolve(models.LocaleTamil),
			Published: g.Published,
			Images:    len(g.Images),
			CreatedBy: g.CreatedBy,
			CreatedAt: g.CreatedAt.Format("2006-01-02"),
		})
	}

	headers := []string{"Slug", "Title", "TitleTa", "Published", "Images", "CreatedBy", "CreatedAt"}
	filePath, err := utils.GenerateExcel(rows, "galleries", headers)
	if err != nil {
		config.Logger.Error("Failed to generate galleries export", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate Excel export"})
	}

	return c.Status(200).JSON(fiber.Map{
		"message":  "Export generated successfully",
		"file_url": utils.GetDownloadURL(c, filePath),
	})
}
