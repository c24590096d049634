package services

import (
	"strings"
	"testing"

	"photo-portfolio-backend/db/models"

	"github.com/stretchr/testify/assert"
)

func TestTruncateDescription(t *testing.T) {
	t.Run("returns first non-empty candidate", func(t *testing.T) {
		got := truncateDescription("", "  ", "Monsoon light over the western ghats")
		assert.Equal(t, "Monsoon light over the western ghats", got)
	})

	t.Run("clips long text with ellipsis", func(t *testing.T) {
		long := strings.Repeat("a", 400)
		got := truncateDescription(long)
		assert.LessOrEqual(t, len([]rune(got)), maxDescriptionRunes)
		assert.True(t, strings.HasSuffix(got, "…"))
	})

	t.Run("counts runes not bytes", func(t *testing.T) {
		tamil := strings.Repeat("மழை ", 100)
		got := truncateDescription(tamil)
		assert.LessOrEqual(t, len([]rune(got)), maxDescriptionRunes)
	})

	t.Run("all empty candidates yield empty string", func(t *testing.T) {
		assert.Equal(t, "", truncateDescription("", "   "))
	})
}

func TestTitleCaser(t *testing.T) {
	t.Run("english gets title casing", func(t *testing.T) {
		caser := titleCaser(models.LocaleEnglish)
		assert.Equal(t, "Street Portraits Of Chennai", caser.String("street portraits of chennai"))
	})

	t.Run("tamil text passes through unchanged", func(t *testing.T) {
		caser := titleCaser(models.LocaleTamil)
		original := "சென்னை தெரு உருவப்படங்கள்"
		assert.Equal(t, original, caser.String(original))
	})
}
