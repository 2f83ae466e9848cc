package client

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) CreateReview(ctx context.Context, body ReviewRequest) (*Review, error) {
	return doJSON[Review](ctx, c, http.MethodPost, "/reviews", requestOptions{body: body})
}

func (c *Client) UpdateReview(ctx context.Context, reviewID int64, body ReviewUpdate) (*Review, error) {
	return doJSON[Review](ctx, c, http.MethodPut, fmt.Sprintf("/reviews/%d", reviewID), requestOptions{body: body})
}

func (c *Client) DeleteReview(ctx context.Context, reviewID int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/reviews/%d", reviewID), requestOptions{})
	return err
}

func (c *Client) ReviewsByBook(ctx context.Context, bookID int64, page, size int) (*Page[Review], error) {
	return doJSON[Page[Review]](ctx, c, http.MethodGet, fmt.Sprintf("/reviews/books/%d", bookID), requestOptions{query: pageQuery(page, size)})
}

func (c *Client) ReviewsByUser(ctx context.Context, userID int64) ([]Review, error) {
	reviews, err := doJSON[[]Review](ctx, c, http.MethodGet, fmt.Sprintf("/reviews/users/%d", userID), requestOptions{})
	if err != nil || reviews == nil {
		return nil, err
	}
	return *reviews, nil
}

func (c *Client) AverageRatingByBook(ctx context.Context, bookID int64) (*AverageRating, error) {
	return doJSON[AverageRating](ctx, c, http.MethodGet, fmt.Sprintf("/reviews/books/%d/average-rating", bookID), requestOptions{})
}
