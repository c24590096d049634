package searchclient

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	searchmodels "photo-portfolio-backend/search/models"
)

// State is the widget lifecycle: idle until a query of at least two
// characters settles, searching while a request is in flight, then either
// showing-results or no-results, and back to idle on clear.
type State string

const (
	StateIdle           State = "idle"
	StateSearching      State = "searching"
	StateShowingResults State = "showing_results"
	StateNoResults      State = "no_results"
	StateError          State = "error"
)

const (
	// DefaultDebounce is the quiet window after the last keystroke before a
	// request fires.
	DefaultDebounce = 300 * time.Millisecond

	minQueryLength = 2
)

// Snapshot is one observable widget state, delivered on Updates.
type Snapshot struct {
	State   State
	Query   string
	Results *searchmodels.SearchResultSet
	Err     error
}

// Widget models one search box instance: it debounces keystrokes, issues at
// most one request per quiet window, and discards stale responses.
//
// Every firing carries a generation number and its own cancelable context.
// A new firing cancels the previous in-flight request and bumps the
// generation, so a slow earlier response can never overwrite fresher
// results. Close cancels whatever is still in flight.
type Widget struct {
	searcher Searcher
	debounce time.Duration
	locale   string
	scope    searchmodels.Scope
	limit    int

	mu         sync.Mutex
	timer      *time.Timer
	generation uint64
	cancel     context.CancelFunc
	closed     bool
	snapshot   Snapshot

	updates chan Snapshot
}

// WidgetOption customizes a Widget.
type WidgetOption func(*Widget)

// WithDebounce overrides the quiet window (tests use a short one).
func WithDebounce(d time.Duration) WidgetOption {
	return func(w *Widget) { w.debounce = d }
}

// WithScope restricts the widget to one collection (full-page tabs).
func WithScope(scope searchmodels.Scope) WidgetOption {
	return func(w *Widget) { w.scope = scope }
}

// WithLimit overrides the per-collection result cap.
func WithLimit(limit int) WidgetOption {
	return func(w *Widget) { w.limit = limit }
}

// WithLocale sets the display locale sent with every request.
func WithLocale(locale string) WidgetOption {
	return func(w *Widget) { w.locale = locale }
}

// NewQuickSearchWidget configures the header widget: scope all, limit 8.
func NewQuickSearchWidget(searcher Searcher, opts ...WidgetOption) *Widget {
	return newWidget(searcher, searchmodels.ScopeAll, 8, opts...)
}

// NewSearchPageWidget configures the full search page: limit 50, scope
// selectable via WithScope.
func NewSearchPageWidget(searcher Searcher, opts ...WidgetOption) *Widget {
	return newWidget(searcher, searchmodels.ScopeAll, 50, opts...)
}

func newWidget(searcher Searcher, scope searchmodels.Scope, limit int, opts ...WidgetOption) *Widget {
	w := &Widget{
		searcher: searcher,
		debounce: DefaultDebounce,
		locale:   "en",
		scope:    scope,
		limit:    limit,
		snapshot: Snapshot{State: StateIdle},
		updates:  make(chan Snapshot, 16),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Updates delivers state transitions. The channel is buffered; a consumer
// that falls behind loses intermediate snapshots, never the latest one.
func (w *Widget) Updates() <-chan Snapshot {
	return w.updates
}

// Snapshot returns the current observable state.
func (w *Widget) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshot
}

// SetQuery registers a keystroke. Nothing is sent until the query has been
// quiet for the debounce window; typing "a", "ab", "abc" inside one window
// fires exactly one request, for "abc".
func (w *Widget) SetQuery(query string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}

	w.snapshot.Query = query

	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}

	trimmed := strings.TrimSpace(query)
	if utf8.RuneCountInString(trimmed) < minQueryLength {
		// Below the server's minimum: abort anything in flight and go idle
		// without a request.
		w.supersedeLocked()
		w.setSnapshotLocked(Snapshot{State: StateIdle, Query: query})
		return
	}

	w.timer = time.AfterFunc(w.debounce, func() {
		w.fire(trimmed)
	})
}

// Clear resets the widget to idle and abandons any in-flight request.
func (w *Widget) Clear() {
	w.SetQuery("")
}

// Close tears the widget down; responses arriving afterwards are dropped.
func (w *Widget) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.supersedeLocked()
}

// supersedeLocked bumps the generation and cancels the previous request.
// Callers hold w.mu.
func (w *Widget) supersedeLocked() uint64 {
	w.generation++
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
	return w.generation
}

func (w *Widget) setSnapshotLocked(s Snapshot) {
	w.snapshot = s
	select {
	case w.updates <- s:
	default:
		// Drop for a slow consumer; Snapshot() always has the latest.
	}
}

func (w *Widget) fire(query string) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	generation := w.supersedeLocked()
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.setSnapshotLocked(Snapshot{State: StateSearching, Query: w.snapshot.Query})
	w.mu.Unlock()

	go func() {
		response, err := w.searcher.Search(ctx, Params{
			Query:  query,
			Locale: w.locale,
			Scope:  w.scope,
			Limit:  w.limit,
		})

		w.mu.Lock()
		defer w.mu.Unlock()

		// Stale or abandoned: a later firing (or Close) superseded us.
		if w.closed || generation != w.generation {
			return
		}

		switch {
		case err != nil:
			w.setSnapshotLocked(Snapshot{State: StateError, Query: w.snapshot.Query, Err: err})
		case response.Results.TotalResults == 0:
			w.setSnapshotLocked(Snapshot{State: StateNoResults, Query: w.snapshot.Query, Results: response.Results})
		default:
			w.setSnapshotLocked(Snapshot{State: StateShowingResults, Query: w.snapshot.Query, Results: response.Results})
		}
	}()
}
