package client

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) CreateBook(ctx context.Context, body BookRequest) (*Book, error) {
	return doJSON[Book](ctx, c, http.MethodPost, "/books", requestOptions{body: body})
}

func (c *Client) ListBooks(ctx context.Context, page, size int) (*Page[Book], error) {
	return doJSON[Page[Book]](ctx, c, http.MethodGet, "/books", requestOptions{query: pageQuery(page, size)})
}

func (c *Client) GetBook(ctx context.Context, id int64) (*BookDetail, error) {
	return doJSON[BookDetail](ctx, c, http.MethodGet, fmt.Sprintf("/books/%d", id), requestOptions{})
}

func (c *Client) UpdateBook(ctx context.Context, id int64, body BookUpdate) (*Book, error) {
	return doJSON[Book](ctx, c, http.MethodPut, fmt.Sprintf("/books/%d", id), requestOptions{body: body})
}

func (c *Client) DeleteBook(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/books/%d", id), requestOptions{})
	return err
}
