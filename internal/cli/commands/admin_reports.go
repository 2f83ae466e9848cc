package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/libhub-dev/libhub/internal/cli/guard"
)

func newAdminReportsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Library activity reports",
	}

	var start, end string
	loansCmd := &cobra.Command{
		Use:   "loans",
		Short: "Borrow/return counts over a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminReportLoans(start, end)
		},
	}
	loansCmd.Flags().StringVar(&start, "start", "", "Range start (YYYY-MM-DD)")
	loansCmd.Flags().StringVar(&end, "end", "", "Range end (YYYY-MM-DD)")
	cmd.AddCommand(loansCmd)

	var bookID int64
	reviewsCmd := &cobra.Command{
		Use:   "reviews",
		Short: "Review ratings, optionally for one book",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminReportReviews(bookID)
		},
	}
	reviewsCmd.Flags().Int64Var(&bookID, "book", 0, "Limit to a single book")
	cmd.AddCommand(reviewsCmd)

	return cmd
}

func runAdminReportLoans(start, end string) error {
	startDate, endDate, err := resolveReportRange(start, end)
	if err != nil {
		return err
	}

	e, err := newEnv()
	if err != nil {
		return err
	}
	if ok, err := e.ensureRoute(guard.AdminReports); !ok {
		return err
	}

	report, err := e.api.GetLoanReport(cmdContext(), startDate, endDate)
	if err != nil {
		return err
	}

	fmt.Printf("Loan report %s — %s\n\n", report.StartDate, report.EndDate)
	fmt.Printf("Total borrows: %d\n", report.TotalBorrows)
	fmt.Printf("Total returns: %d\n", report.TotalReturns)

	if len(report.BorrowsByDate) > 0 {
		fmt.Println("\nBorrows by day:")
		for _, day := range sortedKeys(report.BorrowsByDate) {
			fmt.Printf("  %s  %d\n", day, report.BorrowsByDate[day])
		}
	}
	if len(report.ReturnsByDate) > 0 {
		fmt.Println("\nReturns by day:")
		for _, day := range sortedKeys(report.ReturnsByDate) {
			fmt.Printf("  %s  %d\n", day, report.ReturnsByDate[day])
		}
	}
	return nil
}

func runAdminReportReviews(bookID int64) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	if ok, err := e.ensureRoute(guard.AdminReports); !ok {
		return err
	}

	report, err := e.api.GetReviewReport(cmdContext(), bookID)
	if err != nil {
		return err
	}

	if report.BookTitle != "" {
		fmt.Printf("Review report for %q\n\n", report.BookTitle)
	} else {
		fmt.Println("Review report (all books)")
		fmt.Println()
	}
	fmt.Printf("Average rating: %.1f ★\n", report.AverageRating)
	fmt.Printf("Total reviews:  %d\n", report.TotalReviews)

	if len(report.RatingDistribution) > 0 {
		fmt.Println("\nDistribution:")
		for rating := 5; rating >= 1; rating-- {
			fmt.Printf("  %d★  %d\n", rating, report.RatingDistribution[rating])
		}
	}
	if len(report.TopRatedBooks) > 0 {
		fmt.Println("\nTop rated:")
		for _, b := range report.TopRatedBooks {
			fmt.Printf("  %s\n", b.Title)
		}
	}
	return nil
}

func sortedKeys(m map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
