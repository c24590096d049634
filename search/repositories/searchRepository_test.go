package repositories

import (
	"testing"

	"photo-portfolio-backend/config"
	dbmodels "photo-portfolio-backend/db/models"
	searchmodels "photo-portfolio-backend/search/models"
	"photo-portfolio-backend/search/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestSearchRepo(t *testing.T) *SearchRepository {
	t.Helper()
	config.Logger = zap.NewNop()
	indexer := services.NewIndexingService(zap.NewNop(), t.TempDir())
	repo, _ := NewSearchRepository(indexer)
	return repo
}

func testGallery(slug string, title dbmodels.LocalizedText, published bool) dbmodels.Gallery {
	return dbmodels.Gallery{
		ID:        uuid.New(),
		Slug:      slug,
		Title:     title,
		Excerpt:   dbmodels.PlainText("A small coastal series"),
		Tags:      dbmodels.PlainList([]string{"coast"}),
		Published: published,
	}
}

func TestSearchGalleriesExcludesUnpublished(t *testing.T) {
	repo := newTestSearchRepo(t)

	published := testGallery("northern-lights", dbmodels.PlainText("Northern Lights over Lofoten"), true)
	unpublished := testGallery("northern-fjords", dbmodels.PlainText("Northern Fjords"), false)
	require.NoError(t, repo.IndexSingleGallery(published))
	require.NoError(t, repo.IndexSingleGallery(unpublished))

	results, err := repo.SearchGalleries("northern", dbmodels.LocaleEnglish, 10)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, published.ID.String(), results[0].ID)
	assert.Equal(t, searchmodels.CollectionGallery, results[0].Type)
	assert.Equal(t, "Northern Lights over Lofoten", results[0].Title)
	assert.Equal(t, "northern-lights", results[0].Slug)
}

func TestSearchGalleriesLocaleResolution(t *testing.T) {
	repo := newTestSearchRepo(t)

	bilingual := testGallery("chennai-monsoon", dbmodels.LocalizedString(map[dbmodels.LocaleCode]string{
		dbmodels.LocaleEnglish: "Chennai in the Monsoon",
		dbmodels.LocaleTamil:   "மழைக்காலத்தில் சென்னை",
	}), true)
	englishOnly := testGallery("monsoon-coast", dbmodels.LocalizedString(map[dbmodels.LocaleCode]string{
		dbmodels.LocaleEnglish: "Monsoon Coast",
	}), true)
	require.NoError(t, repo.IndexExistingGalleries([]dbmodels.Gallery{bilingual, englishOnly}))

	results, err := repo.SearchGalleries("monsoon", dbmodels.LocaleTamil, 10)
	require.NoError(t, err)
	require.Len(t, results, 2)

	titles := map[string]string{}
	for _, r := range results {
		titles[r.Slug] = r.Title
	}
	// Tamil requested: bilingual title comes back in Tamil, the
	// English-only title falls back to English.
	assert.Equal(t, "மழைக்காலத்தில் சென்னை", titles["chennai-monsoon"])
	assert.Equal(t, "Monsoon Coast", titles["monsoon-coast"])
}

func TestSearchImagesExcludesDrafts(t *testing.T) {
	repo := newTestSearchRepo(t)

	gallery := testGallery("night-skies", dbmodels.PlainText("Night Skies"), true)
	publishedImage := dbmodels.Image{
		ID:          uuid.New(),
		Slug:        "auroral-arc",
		GalleryID:   gallery.ID,
		Gallery:     &gallery,
		Title:       dbmodels.PlainText("Auroral arc at midnight"),
		Caption:     dbmodels.PlainText("Aurora over the ridge"),
		Tags:        dbmodels.PlainList([]string{"aurora", "night"}),
		Style:       dbmodels.StyleAstro,
		Status:      dbmodels.StatusPublished,
		OriginalURL: "https://cdn.example.com/images/auroral-arc.jpg",
	}
	draftImage := dbmodels.Image{
		ID:          uuid.New(),
		Slug:        "aurora-test-frame",
		GalleryID:   gallery.ID,
		Title:       dbmodels.PlainText("Aurora test frame"),
		Status:      dbmodels.StatusDraft,
		OriginalURL: "https://cdn.example.com/images/aurora-test-frame.jpg",
	}
	require.NoError(t, repo.IndexSingleImage(publishedImage))
	require.NoError(t, repo.IndexSingleImage(draftImage))

	results, err := repo.SearchImages("aurora", dbmodels.LocaleEnglish, 10)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, publishedImage.ID.String(), results[0].ID)
	assert.Equal(t, searchmodels.CollectionImage, results[0].Type)

	// Owning-gallery back-reference survives the index round trip.
	require.NotNil(t, results[0].Gallery)
	assert.Equal(t, gallery.ID.String(), results[0].Gallery.ID)
	assert.Equal(t, "night-skies", results[0].Gallery.Slug)
}

func TestSearchBlogPostsExcludesDrafts(t *testing.T) {
	repo := newTestSearchRepo(t)

	publishedPost := dbmodels.BlogPost{
		ID:      uuid.New(),
		Slug:    "shooting-the-monsoon",
		Title:   dbmodels.PlainText("Shooting the Monsoon"),
		Excerpt: dbmodels.PlainText("Keeping gear dry when the sky opens up"),
		Tags:    dbmodels.PlainList([]string{"monsoon", "technique"}),
		Status:  dbmodels.StatusPublished,
	}
	draftPost := dbmodels.BlogPost{
		ID:     uuid.New(),
		Slug:   "monsoon-gear-notes",
		Title:  dbmodels.PlainText("Monsoon gear notes"),
		Status: dbmodels.StatusDraft,
	}
	require.NoError(t, repo.IndexSingleBlogPost(publishedPost))
	require.NoError(t, repo.IndexSingleBlogPost(draftPost))

	results, err := repo.SearchBlogPosts("monsoon", dbmodels.LocaleEnglish, 10)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, publishedPost.ID.String(), results[0].ID)
	assert.Equal(t, searchmodels.CollectionBlog, results[0].Type)
}

func TestDeleteGalleryRemovesItFromResults(t *testing.T) {
	repo := newTestSearchRepo(t)

	gallery := testGallery("western-ghats", dbmodels.PlainText("Western Ghats"), true)
	require.NoError(t, repo.IndexSingleGallery(gallery))

	results, err := repo.SearchGalleries("western", dbmodels.LocaleEnglish, 10)
	require.NoError(t, err)
	require.Len(t, results, 1)

	require.NoError(t, repo.DeleteGallery(gallery.ID.String()))

	results, err = repo.SearchGalleries("western", dbmodels.LocaleEnglish, 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}
