package services

import (
	"context"
	"strings"
	"sync"
	"unicode/utf8"

	dbmodels "photo-portfolio-backend/db/models"
	searchmodels "photo-portfolio-backend/search/models"

	"go.uber.org/zap"
)

const (
	// MinQueryLength is the hard minimum on the trimmed query. Shorter
	// queries return an empty result set without touching any index.
	MinQueryLength = 2

	// DefaultSearchLimit is the per-collection cap for the full search page.
	DefaultSearchLimit = 20

	// QuickSearchLimit is the per-collection cap for the header widget.
	QuickSearchLimit = 8

	maxSearchLimit = 100
)

// CollectionSearcher is what the aggregator needs from the index layer:
// one published-only, field-scoped query per collection.
type CollectionSearcher interface {
	SearchGalleries(queryString string, locale dbmodels.LocaleCode, limit int) ([]searchmodels.SearchResult, error)
	SearchImages(queryString string, locale dbmodels.LocaleCode, limit int) ([]searchmodels.SearchResult, error)
	SearchBlogPosts(queryString string, locale dbmodels.LocaleCode, limit int) ([]searchmodels.SearchResult, error)
}

// AggregatorService fans a free-text query out across the three content
// collections and merges the hits into one categorized result set. It never
// mutates anything and is safe for concurrent callers.
type AggregatorService struct {
	searcher CollectionSearcher
	logger   *zap.Logger
}

func NewAggregatorService(searcher CollectionSearcher, logger *zap.Logger) *AggregatorService {
	return &AggregatorService{
		searcher: searcher,
		logger:   logger,
	}
}

// Search runs one cross-collection query. The three collection queries are
// fired concurrently and all of them are awaited, so latency tracks the
// slowest collection rather than the sum.
//
// A failing collection is isolated: its bucket stays empty and its failure
// is reported in the returned CollectionError slice while the other buckets
// carry their hits. The call itself only errors on a cancelled context.
func (s *AggregatorService) Search(ctx context.Context, q searchmodels.Query) (*searchmodels.SearchResultSet, []searchmodels.CollectionError, error) {
	result := searchmodels.EmptyResultSet()

	term := strings.TrimSpace(q.Term)
	if utf8.RuneCountInString(term) < MinQueryLength {
		return result, nil, nil
	}

	locale := q.Locale
	if !dbmodels.IsSupportedLocale(locale) {
		locale = dbmodels.LocaleEnglish
	}

	limit := q.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	if err := ctx.Err(); err != nil {
		return result, nil, err
	}

	type bucketQuery struct {
		collection searchmodels.Collection
		run        func() ([]searchmodels.SearchResult, error)
		assign     func([]searchmodels.SearchResult)
	}

	var queries []bucketQuery
	if q.Scope == searchmodels.ScopeAll || q.Scope == searchmodels.ScopeGalleries {
		queries = append(queries, bucketQuery{
			collection: searchmodels.CollectionGallery,
			run:        func() ([]searchmodels.SearchResult, error) { return s.searcher.SearchGalleries(term, locale, limit) },
			assign:     func(hits []searchmodels.SearchResult) { result.Galleries = hits },
		})
	}
	if q.Scope == searchmodels.ScopeAll || q.Scope == searchmodels.ScopeImages {
		queries = append(queries, bucketQuery{
			collection: searchmodels.CollectionImage,
			run:        func() ([]searchmodels.SearchResult, error) { return s.searcher.SearchImages(term, locale, limit) },
			assign:     func(hits []searchmodels.SearchResult) { result.Images = hits },
		})
	}
	if q.Scope == searchmodels.ScopeAll || q.Scope == searchmodels.ScopeBlog {
		queries = append(queries, bucketQuery{
			collection: searchmodels.CollectionBlog,
			run:        func() ([]searchmodels.SearchResult, error) { return s.searcher.SearchBlogPosts(term, locale, limit) },
			assign:     func(hits []searchmodels.SearchResult) { result.BlogPosts = hits },
		})
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failures []searchmodels.CollectionError
	)

	for _, bq := range queries {
		wg.Add(1)
		go func(bq bucketQuery) {
			defer wg.Done()

			hits, err := bq.run()
			if err != nil {
				s.logger.Error("Collection search failed",
					zap.String("collection", string(bq.collection)),
					zap.String("query", term),
					zap.Error(err))
				mu.Lock()
				failures = append(failures, searchmodels.CollectionError{
					Collection: bq.collection,
					Err:        err,
				})
				mu.Unlock()
				return
			}
			if hits == nil {
				hits = []searchmodels.SearchResult{}
			}
			bq.assign(hits)
		}(bq)
	}
	wg.Wait()

	result.Recount()
	return result, failures, nil
}
