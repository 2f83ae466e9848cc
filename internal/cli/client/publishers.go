package client

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) CreatePublisher(ctx context.Context, body PublisherRequest) (*Publisher, error) {
	return doJSON[Publisher](ctx, c, http.MethodPost, "/publishers", requestOptions{body: body})
}

func (c *Client) ListPublishers(ctx context.Context, page, size int) (*Page[Publisher], error) {
	return doJSON[Page[Publisher]](ctx, c, http.MethodGet, "/publishers", requestOptions{query: pageQuery(page, size)})
}

func (c *Client) GetPublisher(ctx context.Context, id int64) (*PublisherDetail, error) {
	return doJSON[PublisherDetail](ctx, c, http.MethodGet, fmt.Sprintf("/publishers/%d", id), requestOptions{})
}

func (c *Client) UpdatePublisher(ctx context.Context, id int64, body PublisherRequest) (*Publisher, error) {
	return doJSON[Publisher](ctx, c, http.MethodPut, fmt.Sprintf("/publishers/%d", id), requestOptions{body: body})
}

func (c *Client) DeletePublisher(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/publishers/%d", id), requestOptions{})
	return err
}
