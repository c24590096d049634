package models

// Quick-view display budget for the header search widget.
const (
	QuickViewPerCategory = 2
	QuickViewMaxItems    = 6
)

// QuickView is the compact flattened shape the header widget renders: a few
// hits across categories plus a "view N more results" affordance.
type QuickView struct {
	Items        []SearchResult `json:"items"`
	TotalResults int            `json:"total_results"`
	MoreResults  int            `json:"more_results"`
}

// BuildQuickView flattens a result set into at most maxItems entries,
// taking up to perCategory from each bucket in display order. MoreResults
// counts everything the compact list could not show.
func BuildQuickView(set *SearchResultSet, perCategory, maxItems int) QuickView {
	view := QuickView{
		Items:        []SearchResult{},
		TotalResults: set.TotalResults,
	}

	for _, bucket := range [][]SearchResult{set.Galleries, set.Images, set.BlogPosts} {
		take := perCategory
		if take > len(bucket) {
			take = len(bucket)
		}
		for i := 0; i < take && len(view.Items) < maxItems; i++ {
			view.Items = append(view.Items, bucket[i])
		}
	}

	view.MoreResults = set.TotalResults - len(view.Items)
	return view
}
