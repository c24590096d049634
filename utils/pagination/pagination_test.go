package pagination

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePaginationParams(t *testing.T) {
	app := fiber.New()
	var got PaginationParams
	app.Get("/galleries", func(c *fiber.Ctx) error {
		got = ParsePaginationParams(c)
		return c.SendStatus(fiber.StatusOK)
	})

	t.Run("reads page, size and collects filters", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/galleries?page=3&page_size=25&published=true&title=monsoon", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		assert.Equal(t, 3, got.Page)
		assert.Equal(t, 25, got.PageSize)
		assert.Equal(t, map[string]string{"published": "true", "title": "monsoon"}, got.Filters)
	})

	t.Run("defaults to first page of ten", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/galleries", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		assert.Equal(t, 1, got.Page)
		assert.Equal(t, 10, got.PageSize)
		assert.Empty(t, got.Filters)
	})
}

func TestValidatePaginationParams(t *testing.T) {
	tests := []struct {
		name    string
		params  PaginationParams
		wantErr bool
	}{
		{"valid", PaginationParams{Page: 1, PageSize: 10}, false},
		{"max page size", PaginationParams{Page: 7, PageSize: 100}, false},
		{"zero page", PaginationParams{Page: 0, PageSize: 10}, true},
		{"zero page size", PaginationParams{Page: 1, PageSize: 0}, true},
		{"oversized page", PaginationParams{Page: 1, PageSize: 101}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePaginationParams(tt.params)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewPaginatedResponse(t *testing.T) {
	app := fiber.New()
	app.Get("/galleries", func(c *fiber.Ctx) error {
		params := ParsePaginationParams(c)
		items := []string{"a", "b"}
		return c.JSON(NewPaginatedResponse(c, items, 45, params))
	})

	decode := func(t *testing.T, url string) PaginatedResponse {
		t.Helper()
		resp, err := app.Test(httptest.NewRequest("GET", url, nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		defer resp.Body.Close()

		var body PaginatedResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		return body
	}

	t.Run("middle page links both directions", func(t *testing.T) {
		body := decode(t, "/galleries?page=2&published=true")
		assert.Equal(t, 2, body.Pagination.CurrentPage)
		assert.Equal(t, 5, body.Pagination.TotalPages)
		assert.Equal(t, int64(45), body.Pagination.TotalItems)

		require.NotNil(t, body.Pagination.NextPage)
		assert.Contains(t, *body.Pagination.NextPage, "page=3")
		assert.Contains(t, *body.Pagination.NextPage, "published=true")
		require.NotNil(t, body.Pagination.PrevPage)
		assert.Contains(t, *body.Pagination.PrevPage, "page=1")
	})

	t.Run("first page has no previous link", func(t *testing.T) {
		body := decode(t, "/galleries")
		assert.Nil(t, body.Pagination.PrevPage)
		require.NotNil(t, body.Pagination.NextPage)
	})

	t.Run("last page has no next link", func(t *testing.T) {
		body := decode(t, "/galleries?page=5")
		assert.Nil(t, body.Pagination.NextPage)
		require.NotNil(t, body.Pagination.PrevPage)
	})
}
