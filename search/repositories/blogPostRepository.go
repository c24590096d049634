package repositories

import (
	"photo-portfolio-backend/config"
	dbmodels "photo-portfolio-backend/db/models"
	searchmodels "photo-portfolio-backend/search/models"

	"github.com/blevesearch/bleve/v2"
	"go.uber.org/zap"
)

// blogSearchFields is the fixed searchable field list for blog posts:
// title, subtitle, excerpt, tags. The post body is deliberately not
// indexed; excerpts are the search surface.
var blogSearchFields = append(
	localizedFieldNames("title", "subtitle", "excerpt"),
	"tags",
)

func blogPostIndexDoc(post dbmodels.BlogPost) map[string]interface{} {
	doc := map[string]interface{}{
		"id":     post.ID.String(),
		"slug":   post.Slug,
		"tags":   allLocaleTags(post.Tags),
		"status": string(post.Status),
	}
	localizedIndexFields(doc, "title", post.Title)
	localizedIndexFields(doc, "subtitle", post.Subtitle)
	localizedIndexFields(doc, "excerpt", post.Excerpt)

	if post.FeaturedImage != nil {
		doc["thumbnail"] = post.FeaturedImage.OriginalURL
	}
	return doc
}

func (r *SearchRepository) IndexSingleBlogPost(post dbmodels.BlogPost) error {
	err := r.indexer.IndexDocument(blogIndex, post.ID.String(), blogPostIndexDoc(post))
	if err != nil {
		config.Logger.Error("Failed to index single blog post into Bleve",
			zap.Error(err),
			zap.String("post_id", post.ID.String()))
		return err
	}

	return nil
}

func (r *SearchRepository) IndexExistingBlogPosts(posts []dbmodels.BlogPost) error {
	docsToIndex := make(map[string]interface{})
	for _, post := range posts {
		docsToIndex[post.ID.String()] = blogPostIndexDoc(post)
	}

	if len(docsToIndex) == 0 {
		config.Logger.Info("No blog posts to index into Bleve.")
		return nil
	}

	if err := r.indexer.BulkIndexDocuments(blogIndex, docsToIndex); err != nil {
		config.Logger.Error("Failed to bulk index blog posts into Bleve", zap.Error(err))
		return err
	}
	return nil
}

func (r *SearchRepository) UpdateBlogPost(post dbmodels.BlogPost) error {
	return r.indexer.UpdateDocument(blogIndex, post.ID.String(), blogPostIndexDoc(post))
}

func (r *SearchRepository) DeleteBlogPost(postID string) error {
	err := r.indexer.DeleteDocument(blogIndex, postID)
	if err != nil {
		config.Logger.Error("Failed to delete blog post from Bleve",
			zap.Error(err),
			zap.String("post_id", postID))
		return err
	}
	return nil
}

// SearchBlogPosts matches published posts against the blog field list.
func (r *SearchRepository) SearchBlogPosts(queryString string, locale dbmodels.LocaleCode, limit int) ([]searchmodels.SearchResult, error) {
	finalQuery := bleve.NewBooleanQuery()

	statusQuery := bleve.NewTermQuery(string(dbmodels.StatusPublished))
	statusQuery.SetField("status")
	finalQuery.AddMust(statusQuery)

	finalQuery.AddMust(buildContainsQuery(queryString, blogSearchFields))

	result, err := r.indexer.SearchIndex(blogIndex, finalQuery, limit)
	if err != nil {
		return nil, err
	}

	return decodeResults(result, func(id string, fields map[string]interface{}, score float64) searchmodels.SearchResult {
		return searchmodels.SearchResult{
			ID:        id,
			Type:      searchmodels.CollectionBlog,
			Title:     localizedField(fields, "title", locale),
			Snippet:   localizedField(fields, "excerpt", locale),
			Slug:      fieldString(fields, "slug"),
			Thumbnail: fieldString(fields, "thumbnail"),
			Tags:      fieldStrings(fields, "tags"),
			Score:     score,
		}
	}), nil
}
