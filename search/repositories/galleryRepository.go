package repositories

import (
	"photo-portfolio-backend/config"
	dbmodels "photo-portfolio-backend/db/models"
	searchmodels "photo-portfolio-backend/search/models"

	"github.com/blevesearch/bleve/v2"
	"go.uber.org/zap"
)

// gallerySearchFields is the fixed searchable field list for galleries:
// title, description, excerpt, tags.
var gallerySearchFields = append(
	localizedFieldNames("title", "description", "excerpt"),
	"tags",
)

func galleryIndexDoc(gallery dbmodels.Gallery) map[string]interface{} {
	doc := map[string]interface{}{
		"id":        gallery.ID.String(),
		"slug":      gallery.Slug,
		"tags":      allLocaleTags(gallery.Tags),
		"published": gallery.Published,
	}
	localizedIndexFields(doc, "title", gallery.Title)
	localizedIndexFields(doc, "description", gallery.Description)
	localizedIndexFields(doc, "excerpt", gallery.Excerpt)

	if gallery.CoverImage != nil {
		doc["thumbnail"] = gallery.CoverImage.OriginalURL
	}
	return doc
}

func (r *SearchRepository) IndexSingleGallery(gallery dbmodels.Gallery) error {
	err := r.indexer.IndexDocument(galleryIndex, gallery.ID.String(), galleryIndexDoc(gallery))
	if err != nil {
		config.Logger.Error("Failed to index single gallery into Bleve",
			zap.Error(err),
			zap.String("gallery_id", gallery.ID.String()))
		return err
	}

	return nil
}

func (r *SearchRepository) IndexExistingGalleries(galleries []dbmodels.Gallery) error {
	docsToIndex := make(map[string]interface{})
	for _, gallery := range galleries {
		docsToIndex[gallery.ID.String()] = galleryIndexDoc(gallery)
	}

	if len(docsToIndex) == 0 {
		config.Logger.Info("No galleries to index into Bleve.")
		return nil
	}

	if err := r.indexer.BulkIndexDocuments(galleryIndex, docsToIndex); err != nil {
		config.Logger.Error("Failed to bulk index galleries into Bleve", zap.Error(err))
		return err
	}
	return nil
}

func (r *SearchRepository) UpdateGallery(gallery dbmodels.Gallery) error {
	return r.indexer.UpdateDocument(galleryIndex, gallery.ID.String(), galleryIndexDoc(gallery))
}

func (r *SearchRepository) DeleteGallery(galleryID string) error {
	err := r.indexer.DeleteDocument(galleryIndex, galleryID)
	if err != nil {
		config.Logger.Error("Failed to delete gallery from Bleve",
			zap.Error(err),
			zap.String("gallery_id", galleryID))
		return err
	}
	return nil
}

// SearchGalleries matches published galleries against the gallery field
// list. Unpublished galleries never leave the index query.
func (r *SearchRepository) SearchGalleries(queryString string, locale dbmodels.LocaleCode, limit int) ([]searchmodels.SearchResult, error) {
	finalQuery := bleve.NewBooleanQuery()

	publishedQuery := bleve.NewBoolFieldQuery(true)
	publishedQuery.SetField("published")
	finalQuery.AddMust(publishedQuery)

	finalQuery.AddMust(buildContainsQuery(queryString, gallerySearchFields))

	result, err := r.indexer.SearchIndex(galleryIndex, finalQuery, limit)
	if err != nil {
		return nil, err
	}

	return decodeResults(result, func(id string, fields map[string]interface{}, score float64) searchmodels.SearchResult {
		return searchmodels.SearchResult{
			ID:        id,
			Type:      searchmodels.CollectionGallery,
			Title:     localizedField(fields, "title", locale),
			Snippet:   localizedField(fields, "excerpt", locale),
			Slug:      fieldString(fields, "slug"),
			Thumbnail: fieldString(fields, "thumbnail"),
			Tags:      fieldStrings(fields, "tags"),
			Score:     score,
		}
	}), nil
}
