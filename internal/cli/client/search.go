package client

import (
	"context"
	"net/http"
)

// AdvancedSearchOptions are the filters of the advanced search. Empty
// fields are omitted from the query.
type AdvancedSearchOptions struct {
	CategoryName string
	AuthorName   string
	UserID       string
	Title        string
}

func (c *Client) AdvancedSearch(ctx context.Context, opts AdvancedSearchOptions) ([]Book, error) {
	books, err := doJSON[[]Book](ctx, c, http.MethodGet, "/search/advanced", requestOptions{
		query: map[string]string{
			"categoryName": opts.CategoryName,
			"authorName":   opts.AuthorName,
			"userId":       opts.UserID,
			"title":        opts.Title,
		},
	})
	if err != nil || books == nil {
		return nil, err
	}
	return *books, nil
}

// SearchBooks runs the criteria search. The criteria travel in the body
// while pagination stays in the query.
func (c *Client) SearchBooks(ctx context.Context, criteria BookSearchCriteria, page, size int) (*Page[Book], error) {
	return doJSON[Page[Book]](ctx, c, http.MethodPost, "/search/books", requestOptions{
		body:  criteria,
		query: pageQuery(page, size),
	})
}
