package domain

// SearchResult is one ranked item returned by the search provider.
type SearchResult struct {
	Title   string
	Link    string
	Snippet string
}
