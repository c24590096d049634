package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	dbmodels "photo-portfolio-backend/db/models"
	searchmodels "photo-portfolio-backend/search/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSearcher struct {
	galleries []searchmodels.SearchResult
	images    []searchmodels.SearchResult
	blogPosts []searchmodels.SearchResult

	galleryErr error
	imageErr   error
	blogErr    error

	calls atomic.Int32
}

func (s *stubSearcher) SearchGalleries(q string, locale dbmodels.LocaleCode, limit int) ([]searchmodels.SearchResult, error) {
	s.calls.Add(1)
	return s.galleries, s.galleryErr
}

func (s *stubSearcher) SearchImages(q string, locale dbmodels.LocaleCode, limit int) ([]searchmodels.SearchResult, error) {
	s.calls.Add(1)
	return s.images, s.imageErr
}

func (s *stubSearcher) SearchBlogPosts(q string, locale dbmodels.LocaleCode, limit int) ([]searchmodels.SearchResult, error) {
	s.calls.Add(1)
	return s.blogPosts, s.blogErr
}

func hit(collection searchmodels.Collection, title string) searchmodels.SearchResult {
	return searchmodels.SearchResult{Type: collection, Title: title}
}

func newAggregator(searcher CollectionSearcher) *AggregatorService {
	return NewAggregatorService(searcher, zap.NewNop())
}

func TestSearchShortQueryReturnsEmptyWithoutQuerying(t *testing.T) {
	for _, term := range []string{"", "a", " a ", "  "} {
		searcher := &stubSearcher{
			galleries: []searchmodels.SearchResult{hit(searchmodels.CollectionGallery, "Northern Lights")},
		}
		agg := newAggregator(searcher)

		result, failures, err := agg.Search(context.Background(), searchmodels.Query{
			Term:   term,
			Locale: dbmodels.LocaleEnglish,
			Scope:  searchmodels.ScopeAll,
			Limit:  20,
		})

		require.NoError(t, err, "term %q", term)
		assert.Empty(t, failures)
		assert.Equal(t, 0, result.TotalResults, "term %q", term)
		assert.Empty(t, result.Galleries)
		assert.Empty(t, result.Images)
		assert.Empty(t, result.BlogPosts)
		assert.Equal(t, int32(0), searcher.calls.Load(), "short query must not reach the index")
	}
}

func TestSearchAllScopeFansOutToAllCollections(t *testing.T) {
	searcher := &stubSearcher{
		galleries: []searchmodels.SearchResult{hit(searchmodels.CollectionGallery, "Iceland Highlands")},
		images:    []searchmodels.SearchResult{hit(searchmodels.CollectionImage, "Iceland Coast")},
		blogPosts: []searchmodels.SearchResult{hit(searchmodels.CollectionBlog, "Shooting Iceland")},
	}
	agg := newAggregator(searcher)

	result, failures, err := agg.Search(context.Background(), searchmodels.Query{
		Term:   "Iceland",
		Locale: dbmodels.LocaleEnglish,
		Scope:  searchmodels.ScopeAll,
		Limit:  20,
	})

	require.NoError(t, err)
	assert.Empty(t, failures)
	assert.Equal(t, int32(3), searcher.calls.Load())
	assert.Equal(t, 3, result.TotalResults)
	assert.Len(t, result.Galleries, 1)
	assert.Len(t, result.Images, 1)
	assert.Len(t, result.BlogPosts, 1)
}

func TestSearchScopeRestrictsBuckets(t *testing.T) {
	searcher := &stubSearcher{
		galleries: []searchmodels.SearchResult{hit(searchmodels.CollectionGallery, "Harbour")},
		images:    []searchmodels.SearchResult{hit(searchmodels.CollectionImage, "Harbour")},
		blogPosts: []searchmodels.SearchResult{hit(searchmodels.CollectionBlog, "Harbour")},
	}
	agg := newAggregator(searcher)

	result, _, err := agg.Search(context.Background(), searchmodels.Query{
		Term:   "Harbour",
		Locale: dbmodels.LocaleEnglish,
		Scope:  searchmodels.ScopeGalleries,
		Limit:  20,
	})

	require.NoError(t, err)
	assert.Equal(t, int32(1), searcher.calls.Load(), "only one collection may be queried")
	assert.Len(t, result.Galleries, 1)
	assert.Empty(t, result.Images)
	assert.Empty(t, result.BlogPosts)
	assert.Equal(t, 1, result.TotalResults)
}

func TestSearchTotalIsSumOfBuckets(t *testing.T) {
	searcher := &stubSearcher{
		galleries: []searchmodels.SearchResult{
			hit(searchmodels.CollectionGallery, "a"),
			hit(searchmodels.CollectionGallery, "b"),
		},
		images: []searchmodels.SearchResult{
			hit(searchmodels.CollectionImage, "c"),
			hit(searchmodels.CollectionImage, "d"),
			hit(searchmodels.CollectionImage, "e"),
		},
	}
	agg := newAggregator(searcher)

	result, _, err := agg.Search(context.Background(), searchmodels.Query{
		Term:   "anything",
		Locale: dbmodels.LocaleEnglish,
		Scope:  searchmodels.ScopeAll,
		Limit:  20,
	})

	require.NoError(t, err)
	assert.Equal(t, len(result.Galleries)+len(result.Images)+len(result.BlogPosts), result.TotalResults)
	assert.Equal(t, 5, result.TotalResults)
}

func TestSearchCollectionFailureIsIsolated(t *testing.T) {
	searcher := &stubSearcher{
		galleries: []searchmodels.SearchResult{hit(searchmodels.CollectionGallery, "Fjords")},
		blogPosts: []searchmodels.SearchResult{hit(searchmodels.CollectionBlog, "Fjords")},
		imageErr:  errors.New("index unavailable"),
	}
	agg := newAggregator(searcher)

	result, failures, err := agg.Search(context.Background(), searchmodels.Query{
		Term:   "Fjords",
		Locale: dbmodels.LocaleEnglish,
		Scope:  searchmodels.ScopeAll,
		Limit:  20,
	})

	require.NoError(t, err, "a failing collection must not fail the call")
	require.Len(t, failures, 1)
	assert.Equal(t, searchmodels.CollectionImage, failures[0].Collection)

	assert.Empty(t, result.Images, "failing bucket stays empty")
	assert.Len(t, result.Galleries, 1, "healthy buckets keep their hits")
	assert.Len(t, result.BlogPosts, 1)
	assert.Equal(t, 2, result.TotalResults)
}

func TestSearchUnsupportedLocaleFallsBackToEnglish(t *testing.T) {
	searcher := &stubSearcher{}
	agg := newAggregator(searcher)

	result, failures, err := agg.Search(context.Background(), searchmodels.Query{
		Term:   "harbour",
		Locale: dbmodels.LocaleCode("fr"),
		Scope:  searchmodels.ScopeAll,
		Limit:  20,
	})

	require.NoError(t, err)
	assert.Empty(t, failures)
	assert.Equal(t, 0, result.TotalResults)
	assert.Equal(t, int32(3), searcher.calls.Load())
}

func TestSearchCancelledContext(t *testing.T) {
	searcher := &stubSearcher{}
	agg := newAggregator(searcher)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := agg.Search(ctx, searchmodels.Query{
		Term:   "harbour",
		Locale: dbmodels.LocaleEnglish,
		Scope:  searchmodels.ScopeAll,
		Limit:  20,
	})

	require.Error(t, err)
	assert.Equal(t, int32(0), searcher.calls.Load())
}

func TestParseScope(t *testing.T) {
	for input, expected := range map[string]searchmodels.Scope{
		"":          searchmodels.ScopeAll,
		"all":       searchmodels.ScopeAll,
		"galleries": searchmodels.ScopeGalleries,
		"images":    searchmodels.ScopeImages,
		"blog":      searchmodels.ScopeBlog,
	} {
		scope, err := searchmodels.ParseScope(input)
		require.NoError(t, err)
		assert.Equal(t, expected, scope)
	}

	_, err := searchmodels.ParseScope("comments")
	assert.Error(t, err)
}
