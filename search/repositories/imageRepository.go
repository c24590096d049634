package repositories

import (
	"photo-portfolio-backend/config"
	dbmodels "photo-portfolio-backend/db/models"
	searchmodels "photo-portfolio-backend/search/models"

	"github.com/blevesearch/bleve/v2"
	"go.uber.org/zap"
)

// imageSearchFields is the fixed searchable field list for images: title,
// description, caption, alt text, tags, location fields and style.
var imageSearchFields = append(
	localizedFieldNames("title", "description", "caption", "alt_text"),
	"tags", "location_name", "city", "region", "country", "style",
)

func derefString(s *string) string {
	if s != nil {
		return *s
	}
	return ""
}

func imageIndexDoc(image dbmodels.Image) map[string]interface{} {
	doc := map[string]interface{}{
		"id":            image.ID.String(),
		"slug":          image.Slug,
		"tags":          allLocaleTags(image.Tags),
		"status":        string(image.Status),
		"style":         string(image.Style),
		"location_name": derefString(image.LocationName),
		"city":          derefString(image.City),
		"region":        derefString(image.Region),
		"country":       derefString(image.Country),
		"thumbnail":     image.OriginalURL,
	}
	localizedIndexFields(doc, "title", image.Title)
	localizedIndexFields(doc, "description", image.Description)
	localizedIndexFields(doc, "caption", image.Caption)
	localizedIndexFields(doc, "alt_text", image.AltText)

	// Owning gallery back-reference for URL construction on the frontend
	doc["gallery_id"] = image.GalleryID.String()
	if image.Gallery != nil {
		doc["gallery_slug"] = image.Gallery.Slug
		localizedIndexFields(doc, "gallery_title", image.Gallery.Title)
	}
	return doc
}

func (r *SearchRepository) IndexSingleImage(image dbmodels.Image) error {
	err := r.indexer.IndexDocument(imageIndex, image.ID.String(), imageIndexDoc(image))
	if err != nil {
		config.Logger.Error("Failed to index single image into Bleve",
			zap.Error(err),
			zap.String("image_id", image.ID.String()))
		return err
	}

	return nil
}

func (r *SearchRepository) IndexExistingImages(images []dbmodels.Image) error {
	docsToIndex := make(map[string]interface{})
	for _, image := range images {
		docsToIndex[image.ID.String()] = imageIndexDoc(image)
	}

	if len(docsToIndex) == 0 {
		config.Logger.Info("No images to index into Bleve.")
		return nil
	}

	if err := r.indexer.BulkIndexDocuments(imageIndex, docsToIndex); err != nil {
		config.Logger.Error("Failed to bulk index images into Bleve", zap.Error(err))
		return err
	}
	return nil
}

func (r *SearchRepository) UpdateImage(image dbmodels.Image) error {
	return r.indexer.UpdateDocument(imageIndex, image.ID.String(), imageIndexDoc(image))
}

func (r *SearchRepository) DeleteImage(imageID string) error {
	err := r.indexer.DeleteDocument(imageIndex, imageID)
	if err != nil {
		config.Logger.Error("Failed to delete image from Bleve",
			zap.Error(err),
			zap.String("image_id", imageID))
		return err
	}
	return nil
}

// SearchImages matches published images against the image field list.
func (r *SearchRepository) SearchImages(queryString string, locale dbmodels.LocaleCode, limit int) ([]searchmodels.SearchResult, error) {
	finalQuery := bleve.NewBooleanQuery()

	statusQuery := bleve.NewTermQuery(string(dbmodels.StatusPublished))
	statusQuery.SetField("status")
	finalQuery.AddMust(statusQuery)

	finalQuery.AddMust(buildContainsQuery(queryString, imageSearchFields))

	result, err := r.indexer.SearchIndex(imageIndex, finalQuery, limit)
	if err != nil {
		return nil, err
	}

	return decodeResults(result, func(id string, fields map[string]interface{}, score float64) searchmodels.SearchResult {
		var galleryRef *searchmodels.GalleryRef
		if galleryID := fieldString(fields, "gallery_id"); galleryID != "" {
			galleryRef = &searchmodels.GalleryRef{
				ID:    galleryID,
				Slug:  fieldString(fields, "gallery_slug"),
				Title: localizedField(fields, "gallery_title", locale),
			}
		}

		return searchmodels.SearchResult{
			ID:        id,
			Type:      searchmodels.CollectionImage,
			Title:     localizedField(fields, "title", locale),
			Snippet:   localizedField(fields, "caption", locale),
			Slug:      fieldString(fields, "slug"),
			Thumbnail: fieldString(fields, "thumbnail"),
			Tags:      fieldStrings(fields, "tags"),
			Gallery:   galleryRef,
			Score:     score,
		}
	}), nil
}
