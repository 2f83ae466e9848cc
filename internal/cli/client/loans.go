package client

import (
	"context"
	"fmt"
	"net/http"
)

// ListLoansOptions are the optional filters of the loan listing.
type ListLoansOptions struct {
	Status string
	UserID int64
	BookID int64
	Page   int
	Size   int
}

// BorrowBook creates a new loan.
func (c *Client) BorrowBook(ctx context.Context, body LoanRequest) (*Loan, error) {
	return doJSON[Loan](ctx, c, http.MethodPost, "/loans", requestOptions{body: body})
}

func (c *Client) ReturnBook(ctx context.Context, loanID int64) (*Loan, error) {
	return doJSON[Loan](ctx, c, http.MethodPut, fmt.Sprintf("/loans/%d/return", loanID), requestOptions{})
}

func (c *Client) RenewLoan(ctx context.Context, loanID int64, body LoanRenewalRequest) (*Loan, error) {
	return doJSON[Loan](ctx, c, http.MethodPut, fmt.Sprintf("/loans/%d/renew", loanID), requestOptions{body: body})
}

func (c *Client) ListLoans(ctx context.Context, opts ListLoansOptions) (*Page[Loan], error) {
	query := pageQuery(opts.Page, opts.Size)
	query["status"] = opts.Status
	if opts.UserID != 0 {
		query["userId"] = formatID(opts.UserID)
	}
	if opts.BookID != 0 {
		query["bookId"] = formatID(opts.BookID)
	}
	return doJSON[Page[Loan]](ctx, c, http.MethodGet, "/loans", requestOptions{query: query})
}

func (c *Client) GetLoan(ctx context.Context, loanID int64) (*LoanDetail, error) {
	return doJSON[LoanDetail](ctx, c, http.MethodGet, fmt.Sprintf("/loans/%d", loanID), requestOptions{})
}

func (c *Client) LoanHistory(ctx context.Context, userID int64) ([]Loan, error) {
	loans, err := doJSON[[]Loan](ctx, c, http.MethodGet, fmt.Sprintf("/loans/users/%d/history", userID), requestOptions{})
	if err != nil || loans == nil {
		return nil, err
	}
	return *loans, nil
}

func (c *Client) ActiveLoans(ctx context.Context, userID int64) ([]Loan, error) {
	loans, err := doJSON[[]Loan](ctx, c, http.MethodGet, fmt.Sprintf("/loans/users/%d/active", userID), requestOptions{})
	if err != nil || loans == nil {
		return nil, err
	}
	return *loans, nil
}

// OverdueLoans lists overdue loans, optionally for a single user (pass 0
// for all users).
func (c *Client) OverdueLoans(ctx context.Context, userID int64) ([]Loan, error) {
	query := map[string]string{}
	if userID != 0 {
		query["userId"] = formatID(userID)
	}
	loans, err := doJSON[[]Loan](ctx, c, http.MethodGet, "/loans/overdue", requestOptions{query: query})
	if err != nil || loans == nil {
		return nil, err
	}
	return *loans, nil
}

// LoanStats returns loan statistics for an optional ISO date-time range.
func (c *Client) LoanStats(ctx context.Context, startDate, endDate string) (*LoanStatistics, error) {
	return doJSON[LoanStatistics](ctx, c, http.MethodGet, "/loans/statistics", requestOptions{
		query: map[string]string{"startDate": startDate, "endDate": endDate},
	})
}
