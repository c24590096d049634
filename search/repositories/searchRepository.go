package repositories

import (
	"context"
	"strings"

	dbmodels "photo-portfolio-backend/db/models"
	searchmodels "photo-portfolio-backend/search/models"
	"photo-portfolio-backend/search/services"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"
)

// Index names, one bleve index per searchable collection
const (
	galleryIndex = "galleries"
	imageIndex   = "images"
	blogIndex    = "blog_posts"
)

type SearchRepository struct {
	indexer services.IndexingServiceInterface
}

type SearchRepositoryInterface interface {
	// General
	DeleteAllIndices(ctx context.Context) error

	// ==== Gallery Indexing ====
	IndexSingleGallery(gallery dbmodels.Gallery) error
	IndexExistingGalleries(galleries []dbmodels.Gallery) error
	UpdateGallery(gallery dbmodels.Gallery) error
	DeleteGallery(galleryID string) error

	// ==== Image Indexing ====
	IndexSingleImage(image dbmodels.Image) error
	IndexExistingImages(images []dbmodels.Image) error
	UpdateImage(image dbmodels.Image) error
	DeleteImage(imageID string) error

	// ==== Blog Post Indexing ====
	IndexSingleBlogPost(post dbmodels.BlogPost) error
	IndexExistingBlogPosts(posts []dbmodels.BlogPost) error
	UpdateBlogPost(post dbmodels.BlogPost) error
	DeleteBlogPost(postID string) error
}

// Constructor returning both the struct and the interface
func NewSearchRepository(indexer services.IndexingServiceInterface) (*SearchRepository, SearchRepositoryInterface) {
	repo := &SearchRepository{indexer: indexer}
	return repo, repo
}

func (r *SearchRepository) DeleteAllIndices(ctx context.Context) error {
	return r.indexer.DeleteAllIndices()
}

// buildContainsQuery builds the per-collection free-text clause: an OR of
// match and prefix queries across the collection's searchable field list.
// Exact token hits get the heavier boost so titles surface first.
func buildContainsQuery(queryString string, fields []string) query.Query {
	queryString = strings.TrimSpace(queryString)
	queryStringLower := strings.ToLower(queryString)

	textQuery := bleve.NewBooleanQuery()
	for i, field := range fields {
		// Earlier fields in the list carry more weight (title first)
		boost := float64(len(fields) - i)

		matchQuery := bleve.NewMatchQuery(queryString)
		matchQuery.SetField(field)
		matchQuery.SetBoost(boost * 2.0)
		textQuery.AddShould(matchQuery)

		prefixQuery := bleve.NewPrefixQuery(queryStringLower)
		prefixQuery.SetField(field)
		prefixQuery.SetBoost(boost)
		textQuery.AddShould(prefixQuery)
	}

	return textQuery
}

// localizedIndexFields flattens one bilingual value into suffixed index
// fields so both languages stay searchable and retrievable per hit.
func localizedIndexFields(doc map[string]interface{}, name string, value dbmodels.LocalizedText) {
	doc[name+"_en"] = value.Resolve(dbmodels.LocaleEnglish)
	doc[name+"_ta"] = value.Resolve(dbmodels.LocaleTamil)
}

// localizedFieldNames returns the suffixed index field names for one
// bilingual field, used when building the searchable field list.
func localizedFieldNames(names ...string) []string {
	out := make([]string, 0, len(names)*2)
	for _, n := range names {
		out = append(out, n+"_en", n+"_ta")
	}
	return out
}

// allLocaleTags merges every locale's tags into one searchable list.
func allLocaleTags(tags dbmodels.LocalizedList) []string {
	if tags.Localized == nil {
		return tags.Plain
	}
	seen := make(map[string]bool)
	var merged []string
	for _, locale := range dbmodels.SupportedLocales {
		for _, tag := range tags.Localized[locale] {
			if tag != "" && !seen[tag] {
				seen[tag] = true
				merged = append(merged, tag)
			}
		}
	}
	return merged
}

// ---- hit decoding helpers ----

func fieldString(fields map[string]interface{}, key string) string {
	if v, ok := fields[key].(string); ok {
		return v
	}
	return ""
}

// fieldStrings handles bleve returning a single stored value as a bare
// string instead of a slice.
func fieldStrings(fields map[string]interface{}, key string) []string {
	switch v := fields[key].(type) {
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// localizedField resolves a suffixed field pair for the requested locale,
// mirroring the LocalizedText fallback rule on the index side.
func localizedField(fields map[string]interface{}, name string, locale dbmodels.LocaleCode) string {
	if v := fieldString(fields, name+"_"+string(locale)); v != "" {
		return v
	}
	return fieldString(fields, name+"_"+string(dbmodels.LocaleEnglish))
}

func decodeResults(result *bleve.SearchResult, decode func(id string, fields map[string]interface{}, score float64) searchmodels.SearchResult) []searchmodels.SearchResult {
	out := make([]searchmodels.SearchResult, 0, len(result.Hits))
	for _, hit := range result.Hits {
		out = append(out, decode(hit.ID, hit.Fields, hit.Score))
	}
	return out
}
