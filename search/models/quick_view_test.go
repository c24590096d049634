package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func bucketOf(collection Collection, n int) []SearchResult {
	out := make([]SearchResult, n)
	for i := range out {
		out[i] = SearchResult{Type: collection, Title: fmt.Sprintf("%s-%d", collection, i)}
	}
	return out
}

func TestBuildQuickViewCapsAtTwoPerCategory(t *testing.T) {
	set := &SearchResultSet{
		Galleries: bucketOf(CollectionGallery, 5),
		Images:    bucketOf(CollectionImage, 5),
		BlogPosts: bucketOf(CollectionBlog, 5),
	}
	set.Recount()

	view := BuildQuickView(set, QuickViewPerCategory, QuickViewMaxItems)

	assert.Len(t, view.Items, 6)
	assert.Equal(t, 15, view.TotalResults)
	assert.Equal(t, 9, view.MoreResults)

	perType := map[Collection]int{}
	for _, item := range view.Items {
		perType[item.Type]++
	}
	assert.Equal(t, 2, perType[CollectionGallery])
	assert.Equal(t, 2, perType[CollectionImage])
	assert.Equal(t, 2, perType[CollectionBlog])
}

// With the widget's per-collection limit of 8 and all three collections
// saturated, the quick view shows 6 and advertises 18 more.
func TestBuildQuickViewSaturatedCollections(t *testing.T) {
	set := &SearchResultSet{
		Galleries: bucketOf(CollectionGallery, 8),
		Images:    bucketOf(CollectionImage, 8),
		BlogPosts: bucketOf(CollectionBlog, 8),
	}
	set.Recount()

	view := BuildQuickView(set, QuickViewPerCategory, QuickViewMaxItems)

	assert.Equal(t, 24, view.TotalResults)
	assert.Len(t, view.Items, 6)
	assert.Equal(t, 18, view.MoreResults)
}

func TestBuildQuickViewSparseBuckets(t *testing.T) {
	set := &SearchResultSet{
		Galleries: bucketOf(CollectionGallery, 1),
		Images:    []SearchResult{},
		BlogPosts: bucketOf(CollectionBlog, 1),
	}
	set.Recount()

	view := BuildQuickView(set, QuickViewPerCategory, QuickViewMaxItems)

	assert.Len(t, view.Items, 2)
	assert.Equal(t, 0, view.MoreResults)
}

func TestBuildQuickViewEmptySet(t *testing.T) {
	view := BuildQuickView(EmptyResultSet(), QuickViewPerCategory, QuickViewMaxItems)

	assert.NotNil(t, view.Items)
	assert.Empty(t, view.Items)
	assert.Equal(t, 0, view.MoreResults)
}
