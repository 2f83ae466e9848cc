package client

import (
	"context"
	"net/http"
)

func (c *Client) DashboardStats(ctx context.Context) (*DashboardStatistics, error) {
	return doJSON[DashboardStatistics](ctx, c, http.MethodGet, "/reports/dashboard", requestOptions{})
}

// GetLoanReport returns borrow/return counts for an optional ISO date-time
// range.
func (c *Client) GetLoanReport(ctx context.Context, startDate, endDate string) (*LoanReport, error) {
	return doJSON[LoanReport](ctx, c, http.MethodGet, "/reports/loans", requestOptions{
		query: map[string]string{"startDate": startDate, "endDate": endDate},
	})
}

// GetReviewReport returns the review report, optionally scoped to a single
// book (pass 0 for all books).
func (c *Client) GetReviewReport(ctx context.Context, bookID int64) (*ReviewReport, error) {
	query := map[string]string{}
	if bookID != 0 {
		query["bookId"] = formatID(bookID)
	}
	return doJSON[ReviewReport](ctx, c, http.MethodGet, "/reports/reviews", requestOptions{query: query})
}
