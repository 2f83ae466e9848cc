package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/libhub-dev/libhub/internal/cli/client"
	"github.com/libhub-dev/libhub/internal/cli/guard"
)

func newAdminLoansCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loans",
		Short: "Manage loans across all members",
	}

	var page, size int
	var status string
	var userID, bookID int64
	lsCmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List loans",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminLoansList(client.ListLoansOptions{
				Status: status,
				UserID: userID,
				BookID: bookID,
				Page:   page,
				Size:   size,
			})
		},
	}
	lsCmd.Flags().IntVar(&page, "page", 0, "Page number (starting at 0)")
	lsCmd.Flags().IntVar(&size, "size", 20, "Page size")
	lsCmd.Flags().StringVar(&status, "status", "", "Filter by status (ACTIVE, RETURNED, OVERDUE)")
	lsCmd.Flags().Int64Var(&userID, "user", 0, "Filter by user ID")
	lsCmd.Flags().Int64Var(&bookID, "book", 0, "Filter by book ID")
	cmd.AddCommand(lsCmd)

	var overdueUser int64
	overdueCmd := &cobra.Command{
		Use:   "overdue",
		Short: "List overdue loans",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminLoansOverdue(overdueUser)
		},
	}
	overdueCmd.Flags().Int64Var(&overdueUser, "user", 0, "Limit to a single user")
	cmd.AddCommand(overdueCmd)

	var start, end string
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show loan statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminLoansStats(start, end)
		},
	}
	statsCmd.Flags().StringVar(&start, "start", "", "Range start (YYYY-MM-DD)")
	statsCmd.Flags().StringVar(&end, "end", "", "Range end (YYYY-MM-DD)")
	cmd.AddCommand(statsCmd)

	return cmd
}

func runAdminLoansList(opts client.ListLoansOptions) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	if ok, err := e.ensureRoute(guard.AdminLoans); !ok {
		return err
	}

	loans, err := e.api.ListLoans(cmdContext(), opts)
	if err != nil {
		return err
	}

	if len(loans.Content) == 0 {
		fmt.Println("No loans found.")
		return nil
	}

	printLoanTable(loans.Content)
	fmt.Printf("\nPage %d of %d (%d loans total)\n", loans.Number+1, loans.TotalPages, loans.TotalElements)
	return nil
}

func runAdminLoansOverdue(userID int64) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	if ok, err := e.ensureRoute(guard.AdminLoans); !ok {
		return err
	}

	loans, err := e.api.OverdueLoans(cmdContext(), userID)
	if err != nil {
		return err
	}

	if len(loans) == 0 {
		fmt.Println("No overdue loans. 🎉")
		return nil
	}

	printLoanTable(loans)
	return nil
}

func runAdminLoansStats(start, end string) error {
	startDate, endDate, err := resolveReportRange(start, end)
	if err != nil {
		return err
	}

	e, err := newEnv()
	if err != nil {
		return err
	}
	if ok, err := e.ensureRoute(guard.AdminLoans); !ok {
		return err
	}

	stats, err := e.api.LoanStats(cmdContext(), startDate, endDate)
	if err != nil {
		return err
	}

	fmt.Printf("Borrowed: %d\n", stats.TotalBorrowed)
	fmt.Printf("Returned: %d\n", stats.TotalReturned)
	fmt.Printf("Overdue:  %d\n", stats.TotalOverdue)
	if len(stats.MostBorrowedBooks) > 0 {
		fmt.Println("\nMost borrowed:")
		for _, b := range stats.MostBorrowedBooks {
			fmt.Printf("  %s\n", b.Title)
		}
	}
	return nil
}

// resolveReportRange turns YYYY-MM-DD bounds into the RFC 3339 timestamps
// the API expects. Empty bounds stay empty and the server applies its
// defaults.
func resolveReportRange(start, end string) (string, string, error) {
	convert := func(flag, value string) (string, error) {
		if value == "" {
			return "", nil
		}
		t, err := time.Parse("2006-01-02", value)
		if err != nil {
			return "", fmt.Errorf("invalid --%s date %q (use YYYY-MM-DD)", flag, value)
		}
		return t.UTC().Format(time.RFC3339), nil
	}

	startDate, err := convert("start", start)
	if err != nil {
		return "", "", err
	}
	endDate, err := convert("end", end)
	if err != nil {
		return "", "", err
	}
	return startDate, endDate, nil
}
