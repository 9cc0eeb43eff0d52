package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/set-night/gemigram/internal/domain"
	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"
)

// SearchService queries a Google Programmable Search Engine.
type SearchService struct {
	svc   *customsearch.Service
	cx    string
	limit int
}

func NewSearchService(ctx context.Context, apiKey, cx string, limit int, opts ...option.ClientOption) (*SearchService, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	svc, err := customsearch.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create customsearch service: %w", err)
	}
	return &SearchService{svc: svc, cx: cx, limit: limit}, nil
}

// Search returns at most limit results. A response without items yields an
// empty slice and no error.
func (s *SearchService) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	res, err := s.svc.Cse.List().Q(query).Cx(s.cx).Num(int64(s.limit)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("custom search: %w", err)
	}

	items := res.Items
	if len(items) > s.limit {
		items = items[:s.limit]
	}

	results := make([]domain.SearchResult, 0, len(items))
	for _, item := range items {
		results = append(results, domain.SearchResult{
			Title:   item.Title,
			Link:    item.Link,
			Snippet: snippetText(item.HtmlSnippet, item.Snippet),
		})
	}
	return results, nil
}

// FormatResults renders results as "title\nlink" blocks separated by a blank line.
func FormatResults(results []domain.SearchResult) string {
	blocks := make([]string, 0, len(results))
	for _, r := range results {
		blocks = append(blocks, r.Title+"\n"+r.Link)
	}
	return strings.Join(blocks, "\n\n")
}

// snippetText flattens the HTML snippet to text, falling back to the plain one.
func snippetText(htmlSnippet, plain string) string {
	if htmlSnippet == "" {
		return strings.TrimSpace(plain)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlSnippet))
	if err != nil {
		return strings.TrimSpace(plain)
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
