package models

import (
	"fmt"

	dbmodels "photo-portfolio-backend/db/models"
)

// Scope restricts a search to one collection, or fans out to all three.
type Scope string

const (
	ScopeAll       Scope = "all"
	ScopeGalleries Scope = "galleries"
	ScopeImages    Scope = "images"
	ScopeBlog      Scope = "blog"
)

// ParseScope validates the ?type= query parameter. Empty means all.
func ParseScope(s string) (Scope, error) {
	switch Scope(s) {
	case "", ScopeAll:
		return ScopeAll, nil
	case ScopeGalleries, ScopeImages, ScopeBlog:
		return Scope(s), nil
	default:
		return "", fmt.Errorf("invalid search scope %q", s)
	}
}

// Collection is the discriminator tag on a search result.
type Collection string

const (
	CollectionGallery Collection = "gallery"
	CollectionImage   Collection = "image"
	CollectionBlog    Collection = "blog"
)

// GalleryRef is the owning-gallery back-reference carried by image results,
// used by the frontend to build /galleries/<slug>/<image-slug> URLs.
type GalleryRef struct {
	ID    string `json:"id"`
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

// SearchResult is one hit, already resolved to the requested locale.
type SearchResult struct {
	ID        string      `json:"id"`
	Type      Collection  `json:"type"`
	Title     string      `json:"title"`
	Snippet   string      `json:"snippet,omitempty"`
	Slug      string      `json:"slug"`
	Thumbnail string      `json:"thumbnail,omitempty"`
	Tags      []string    `json:"tags,omitempty"`
	Gallery   *GalleryRef `json:"gallery,omitempty"`
	Score     float64     `json:"score"`
}

// SearchResultSet holds the three categorized buckets of one search call.
// TotalResults always equals the sum of the bucket lengths.
type SearchResultSet struct {
	Galleries    []SearchResult `json:"galleries"`
	Images       []SearchResult `json:"images"`
	BlogPosts    []SearchResult `json:"blog_posts"`
	TotalResults int            `json:"total_results"`
}

// EmptyResultSet returns a valid zero-hit set with non-nil buckets.
func EmptyResultSet() *SearchResultSet {
	return &SearchResultSet{
		Galleries: []SearchResult{},
		Images:    []SearchResult{},
		BlogPosts: []SearchResult{},
	}
}

// Recount fixes TotalResults after the buckets have been filled.
func (s *SearchResultSet) Recount() {
	s.TotalResults = len(s.Galleries) + len(s.Images) + len(s.BlogPosts)
}

// CollectionError records a per-collection query failure. The failing bucket
// stays empty; the call as a whole still succeeds so one degraded collection
// never zeroes out the other two.
type CollectionError struct {
	Collection Collection
	Err        error
}

func (e CollectionError) Error() string {
	return fmt.Sprintf("%s search failed: %v", e.Collection, e.Err)
}

// Query is the validated input of one aggregator call.
type Query struct {
	Term   string
	Locale dbmodels.LocaleCode
	Scope  Scope
	Limit  int
}
