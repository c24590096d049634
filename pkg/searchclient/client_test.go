package searchclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	searchmodels "photo-portfolio-backend/search/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSearchDecodesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "northern lights", r.URL.Query().Get("q"))
		assert.Equal(t, "en", r.URL.Query().Get("locale"))
		assert.Equal(t, "galleries", r.URL.Query().Get("type"))
		assert.Equal(t, "20", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"results": {
				"galleries": [{"id":"1","type":"gallery","title":"Northern Lights","slug":"northern-lights","score":1.2}],
				"images": [],
				"blog_posts": [],
				"total_results": 1
			}
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	response, err := client.Search(context.Background(), Params{
		Query:  "northern lights",
		Locale: "en",
		Scope:  searchmodels.ScopeGalleries,
		Limit:  20,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, response.Results.TotalResults)
	require.Len(t, response.Results.Galleries, 1)
	assert.Equal(t, "Northern Lights", response.Results.Galleries[0].Title)
	assert.Empty(t, response.Results.Images)
}

func TestClientSearchNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Search(context.Background(), Params{Query: "iceland"})

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.Code)
}

func TestClientSearchHonorsContextCancellation(t *testing.T) {
	started := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	client := NewClient(server.URL)

	errCh := make(chan error, 1)
	go func() {
		_, err := client.Search(ctx, Params{Query: "iceland"})
		errCh <- err
	}()

	<-started
	cancel()

	err := <-errCh
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
