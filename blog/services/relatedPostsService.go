package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"photo-portfolio-backend/config"
	"photo-portfolio-backend/db/models"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"go.uber.org/zap"
)

const relatedPostsIndex = "blog_posts"

// RelatedPost is the trimmed shape returned by the related-posts lookup
type RelatedPost struct {
	ID    string   `json:"id"`
	Slug  string   `json:"slug"`
	Title string   `json:"title"`
	Tags  []string `json:"tags"`
	Score float64  `json:"score"`
}

// RelatedPostsService keeps a tag-keyed mirror of published posts in
// Elasticsearch and answers "more like this" queries against it. Bleve
// serves free-text search; this index only exists for tag affinity.
type RelatedPostsService struct {
	client *elasticsearch.Client
}

func NewRelatedPostsService(client *elasticsearch.Client) *RelatedPostsService {
	return &RelatedPostsService{client: client}
}

// CreateIndex creates the blog posts index with proper mapping
func (s *RelatedPostsService) CreateIndex(ctx context.Context) error {
	mapping := `{
		"mappings": {
			"properties": {
				"id": {"type": "keyword"},
				"slug": {"type": "keyword"},
				"title_en": {"type": "text"},
				"title_ta": {"type": "text"},
				"tags": {"type": "keyword"},
				"published_at": {"type": "date"}
			}
		}
	}`

	req := esapi.IndicesCreateRequest{
		Index: relatedPostsIndex,
		Body:  strings.NewReader(mapping),
	}

	res, err := req.Do(ctx, s.client)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() && !strings.Contains(res.String(), "resource_already_exists_exception") {
		return fmt.Errorf("error creating index: %s", res.String())
	}

	return nil
}

// IndexBlogPost mirrors a published post into the related-posts index
func (s *RelatedPostsService) IndexBlogPost(ctx context.Context, post *models.BlogPost) error {
	doc := map[string]interface{}{
		"id":       post.ID.String(),
		"slug":     post.Slug,
		"title_en": post.Title.Resolve(models.LocaleEnglish),
		"title_ta": post.Title.Resolve(models.LocaleTamil),
		"tags":     allTags(post.Tags),
	}
	if post.PublishedAt != nil {
		doc["published_at"] = post.PublishedAt
	}

	docJSON, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	req := esapi.IndexRequest{
		Index:      relatedPostsIndex,
		DocumentID: post.ID.String(),
		Body:       bytes.NewReader(docJSON),
		Refresh:    "true",
	}

	res, err := req.Do(ctx, s.client)
	if err != nil {
		return fmt.Errorf("failed to index document: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing document: %s", res.String())
	}

	return nil
}

// DeleteBlogPost removes a post from the related-posts index
func (s *RelatedPostsService) DeleteBlogPost(ctx context.Context, postID string) error {
	req := esapi.DeleteRequest{
		Index:      relatedPostsIndex,
		DocumentID: postID,
	}

	res, err := req.Do(ctx, s.client)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("error deleting document: %s", res.String())
	}

	return nil
}

// GetRelatedPosts finds posts sharing tags with the given post. Failures
// degrade to an empty list so the post page never breaks on a sidebar.
func (s *RelatedPostsService) GetRelatedPosts(ctx context.Context, currentPostID string, tags []string, limit int) []RelatedPost {
	if len(tags) == 0 {
		return []RelatedPost{}
	}
	if limit <= 0 {
		limit = 5
	}

	shouldClauses := []map[string]interface{}{}
	for _, tag := range tags {
		shouldClauses = append(shouldClauses, map[string]interface{}{
			"term": map[string]interface{}{
				"tags": tag,
			},
		})
	}

	searchQuery := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"should": shouldClauses,
				"must_not": map[string]interface{}{
					"term": map[string]interface{}{
						"id": currentPostID,
					},
				},
				"minimum_should_match": 1,
			},
		},
		"size": limit,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(searchQuery); err != nil {
		config.Logger.Error("Failed to encode related posts query", zap.Error(err))
		return []RelatedPost{}
	}

	res, err := s.client.Search(
		s.client.Search.WithContext(ctx),
		s.client.Search.WithIndex(relatedPostsIndex),
		s.client.Search.WithBody(&buf),
	)
	if err != nil {
		config.Logger.Error("Error searching related posts", zap.Error(err))
		return []RelatedPost{}
	}
	defer res.Body.Close()

	if res.IsError() {
		config.Logger.Error("Error searching related posts", zap.String("response", res.String()))
		return []RelatedPost{}
	}

	var result map[string]interface{}
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		config.Logger.Error("Failed to parse related posts response", zap.Error(err))
		return []RelatedPost{}
	}

	var relatedPosts []RelatedPost
	if hits, ok := result["hits"].(map[string]interface{}); ok {
		if hitsArray, ok := hits["hits"].([]interface{}); ok {
			for _, hit := range hitsArray {
				hitMap, ok := hit.(map[string]interface{})
				if !ok {
					continue
				}
				source, ok := hitMap["_source"].(map[string]interface{})
				if !ok {
					continue
				}

				related := RelatedPost{
					ID:    stringField(source, "id"),
					Slug:  stringField(source, "slug"),
					Title: stringField(source, "title_en"),
				}
				if score, ok := hitMap["_score"].(float64); ok {
					related.Score = score
				}

				if tagsInterface, ok := source["tags"].([]interface{}); ok {
					for _, t := range tagsInterface {
						if tagStr, ok := t.(string); ok {
							related.Tags = append(related.Tags, tagStr)
						}
					}
				}

				relatedPosts = append(relatedPosts, related)
			}
		}
	}

	return relatedPosts
}

func stringField(source map[string]interface{}, key string) string {
	if v, ok := source[key].(string); ok {
		return v
	}
	return ""
}

// allTags flattens both locales into one keyword list so a Tamil tag on
// one post can still match the Tamil tag on another.
func allTags(tags models.LocalizedList) []string {
	seen := make(map[string]bool)
	var out []string
	for _, locale := range models.SupportedLocales {
		for _, tag := range tags.Resolve(locale) {
			if !seen[tag] {
				seen[tag] = true
				out = append(out, tag)
			}
		}
	}
	return out
}
