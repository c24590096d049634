package repositories

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newDryRunRepo builds a repository over a dry-run session so the generated
// SQL can be inspected without a live database.
func newDryRunRepo(t *testing.T) (GalleryRepository, *[]string) {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=portfolio dbname=portfolio",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	require.NoError(t, err)

	captured := &[]string{}
	err = db.Callback().Query().After("gorm:query").Register("capture_sql", func(tx *gorm.DB) {
		*captured = append(*captured, tx.Statement.SQL.String())
	})
	require.NoError(t, err)

	return NewGalleryRepository(db), captured
}

func TestGetFilteredGalleriesTitleFilterMatchesBothTitleShapes(t *testing.T) {
	repo, captured := newDryRunRepo(t)

	_, _, err := repo.GetFilteredGalleries(10, 0, map[string]string{"title": "Western"})
	require.NoError(t, err)

	sql := strings.Join(*captured, "\n")
	assert.Contains(t, sql, "title->>'en' ILIKE")
	assert.Contains(t, sql, "title->>'ta' ILIKE")
	// A plain title persists as a bare JSON string, not an object, so the
	// filter must unwrap it with #>> '{}' rather than look up a key.
	assert.Contains(t, sql, "title #>> '{}' ILIKE")
	assert.NotContains(t, sql, "'plain'")
}

func TestGetFilteredGalleriesPublishedFilter(t *testing.T) {
	repo, captured := newDryRunRepo(t)

	_, _, err := repo.GetFilteredGalleries(10, 0, map[string]string{"published": "true"})
	require.NoError(t, err)

	sql := strings.Join(*captured, "\n")
	assert.Contains(t, sql, "published = ")
}
