package searchclient

import (
	"context"
	"sync"
	"testing"
	"time"

	searchmodels "photo-portfolio-backend/search/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSearcher struct {
	mu      sync.Mutex
	calls   []Params
	respond func(ctx context.Context, params Params) (*Response, error)
}

func (f *fakeSearcher) Search(ctx context.Context, params Params) (*Response, error) {
	f.mu.Lock()
	f.calls = append(f.calls, params)
	f.mu.Unlock()

	if f.respond != nil {
		return f.respond(ctx, params)
	}
	return &Response{Results: searchmodels.EmptyResultSet()}, nil
}

func (f *fakeSearcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeSearcher) lastCall() Params {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[len(f.calls)-1]
}

func resultSetWithGalleries(titles ...string) *searchmodels.SearchResultSet {
	set := searchmodels.EmptyResultSet()
	for _, title := range titles {
		set.Galleries = append(set.Galleries, searchmodels.SearchResult{
			Type:  searchmodels.CollectionGallery,
			Title: title,
		})
	}
	set.Recount()
	return set
}

func TestWidgetDebouncesKeystrokes(t *testing.T) {
	searcher := &fakeSearcher{}
	widget := NewQuickSearchWidget(searcher, WithDebounce(40*time.Millisecond))
	defer widget.Close()

	// Three keystrokes inside one quiet window
	widget.SetQuery("a")
	widget.SetQuery("ab")
	widget.SetQuery("abc")

	require.Eventually(t, func() bool {
		return searcher.callCount() == 1
	}, time.Second, 5*time.Millisecond, "exactly one request must fire")

	// Nothing else fires once the window has settled
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 1, searcher.callCount())
	assert.Equal(t, "abc", searcher.lastCall().Query)
	assert.Equal(t, searchmodels.ScopeAll, searcher.lastCall().Scope)
	assert.Equal(t, 8, searcher.lastCall().Limit)
}

func TestWidgetShortQueryStaysIdle(t *testing.T) {
	searcher := &fakeSearcher{}
	widget := NewQuickSearchWidget(searcher, WithDebounce(20*time.Millisecond))
	defer widget.Close()

	widget.SetQuery("a")
	time.Sleep(80 * time.Millisecond)

	assert.Equal(t, 0, searcher.callCount())
	assert.Equal(t, StateIdle, widget.Snapshot().State)
}

func TestWidgetStatesForResultsAndNoResults(t *testing.T) {
	searcher := &fakeSearcher{
		respond: func(ctx context.Context, params Params) (*Response, error) {
			if params.Query == "iceland" {
				return &Response{Results: resultSetWithGalleries("Iceland Highlands")}, nil
			}
			return &Response{Results: searchmodels.EmptyResultSet()}, nil
		},
	}
	widget := NewQuickSearchWidget(searcher, WithDebounce(20*time.Millisecond))
	defer widget.Close()

	widget.SetQuery("iceland")
	require.Eventually(t, func() bool {
		return widget.Snapshot().State == StateShowingResults
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, widget.Snapshot().Results.TotalResults)

	widget.SetQuery("zzzz")
	require.Eventually(t, func() bool {
		return widget.Snapshot().State == StateNoResults
	}, time.Second, 5*time.Millisecond)

	widget.Clear()
	assert.Equal(t, StateIdle, widget.Snapshot().State)
}

// A slow earlier response must never overwrite the results of a later
// request, even when it resolves afterwards.
func TestWidgetDiscardsStaleResponses(t *testing.T) {
	releaseSlow := make(chan struct{})
	searcher := &fakeSearcher{
		respond: func(ctx context.Context, params Params) (*Response, error) {
			if params.Query == "slow query" {
				select {
				case <-releaseSlow:
				case <-ctx.Done():
					return nil, ctx.Err()
				}
				return &Response{Results: resultSetWithGalleries("Stale")}, nil
			}
			return &Response{Results: resultSetWithGalleries("Fresh")}, nil
		},
	}
	widget := NewQuickSearchWidget(searcher, WithDebounce(10*time.Millisecond))
	defer widget.Close()

	widget.SetQuery("slow query")
	require.Eventually(t, func() bool {
		return searcher.callCount() == 1
	}, time.Second, 5*time.Millisecond)

	widget.SetQuery("fresh query")
	require.Eventually(t, func() bool {
		snap := widget.Snapshot()
		return snap.State == StateShowingResults && snap.Results.Galleries[0].Title == "Fresh"
	}, time.Second, 5*time.Millisecond)

	close(releaseSlow)
	time.Sleep(50 * time.Millisecond)

	snap := widget.Snapshot()
	require.Equal(t, StateShowingResults, snap.State)
	assert.Equal(t, "Fresh", snap.Results.Galleries[0].Title)
}

func TestWidgetErrorStateIsDistinctFromNoResults(t *testing.T) {
	searcher := &fakeSearcher{
		respond: func(ctx context.Context, params Params) (*Response, error) {
			return nil, &StatusError{Code: 503}
		},
	}
	widget := NewQuickSearchWidget(searcher, WithDebounce(10*time.Millisecond))
	defer widget.Close()

	widget.SetQuery("iceland")
	require.Eventually(t, func() bool {
		return widget.Snapshot().State == StateError
	}, time.Second, 5*time.Millisecond)

	var statusErr *StatusError
	require.ErrorAs(t, widget.Snapshot().Err, &statusErr)
	assert.Equal(t, 503, statusErr.Code)
}

func TestWidgetCloseDropsLateResponses(t *testing.T) {
	release := make(chan struct{})
	searcher := &fakeSearcher{
		respond: func(ctx context.Context, params Params) (*Response, error) {
			select {
			case <-release:
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			return &Response{Results: resultSetWithGalleries("Late")}, nil
		},
	}
	widget := NewQuickSearchWidget(searcher, WithDebounce(10*time.Millisecond))

	widget.SetQuery("iceland")
	require.Eventually(t, func() bool {
		return searcher.callCount() == 1
	}, time.Second, 5*time.Millisecond)

	widget.Close()
	close(release)
	time.Sleep(50 * time.Millisecond)

	assert.NotEqual(t, StateShowingResults, widget.Snapshot().State)
}

func TestSearchPageWidgetUsesFullPageLimit(t *testing.T) {
	searcher := &fakeSearcher{}
	widget := NewSearchPageWidget(searcher,
		WithDebounce(10*time.Millisecond),
		WithScope(searchmodels.ScopeBlog),
	)
	defer widget.Close()

	widget.SetQuery("iceland")
	require.Eventually(t, func() bool {
		return searcher.callCount() == 1
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, 50, searcher.lastCall().Limit)
	assert.Equal(t, searchmodels.ScopeBlog, searcher.lastCall().Scope)
}
