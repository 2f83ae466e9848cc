package client

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) CreateAuthor(ctx context.Context, body AuthorRequest) (*Author, error) {
	return doJSON[Author](ctx, c, http.MethodPost, "/authors", requestOptions{body: body})
}

// ListAuthors returns a page of authors, optionally filtered by a search
// term over the author name.
func (c *Client) ListAuthors(ctx context.Context, page, size int, search string) (*Page[Author], error) {
	query := pageQuery(page, size)
	query["search"] = search
	return doJSON[Page[Author]](ctx, c, http.MethodGet, "/authors", requestOptions{query: query})
}

func (c *Client) GetAuthor(ctx context.Context, id int64) (*AuthorDetail, error) {
	return doJSON[AuthorDetail](ctx, c, http.MethodGet, fmt.Sprintf("/authors/%d", id), requestOptions{})
}

func (c *Client) UpdateAuthor(ctx context.Context, id int64, body AuthorRequest) (*Author, error) {
	return doJSON[Author](ctx, c, http.MethodPut, fmt.Sprintf("/authors/%d", id), requestOptions{body: body})
}

func (c *Client) DeleteAuthor(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/authors/%d", id), requestOptions{})
	return err
}
