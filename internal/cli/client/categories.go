package client

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) CreateCategory(ctx context.Context, body CategoryRequest) (*Category, error) {
	return doJSON[Category](ctx, c, http.MethodPost, "/categories", requestOptions{body: body})
}

func (c *Client) ListCategories(ctx context.Context, page, size int) (*Page[Category], error) {
	return doJSON[Page[Category]](ctx, c, http.MethodGet, "/categories", requestOptions{query: pageQuery(page, size)})
}

func (c *Client) GetCategory(ctx context.Context, id int64) (*CategoryDetail, error) {
	return doJSON[CategoryDetail](ctx, c, http.MethodGet, fmt.Sprintf("/categories/%d", id), requestOptions{})
}

func (c *Client) UpdateCategory(ctx context.Context, id int64, body CategoryRequest) (*Category, error) {
	return doJSON[Category](ctx, c, http.MethodPut, fmt.Sprintf("/categories/%d", id), requestOptions{body: body})
}

func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/categories/%d", id), requestOptions{})
	return err
}
