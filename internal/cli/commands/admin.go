package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/libhub-dev/libhub/internal/cli/guard"
)

// NewAdminCmd creates the admin command group (the back-office surface).
func NewAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Library back-office (administrators only)",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "dashboard",
		Short: "Show library-wide statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminDashboard()
		},
	})

	cmd.AddCommand(newAdminAuthorsCmd())
	cmd.AddCommand(newAdminCategoriesCmd())
	cmd.AddCommand(newAdminPublishersCmd())
	cmd.AddCommand(newAdminBooksCmd())
	cmd.AddCommand(newAdminUsersCmd())
	cmd.AddCommand(newAdminLoansCmd())
	cmd.AddCommand(newAdminReportsCmd())

	return cmd
}

func runAdminDashboard() error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	if ok, err := e.ensureRoute(guard.Admin); !ok {
		return err
	}

	stats, err := e.api.DashboardStats(cmdContext())
	if err != nil {
		return err
	}

	fmt.Printf("Books:         %d\n", stats.TotalBooks)
	fmt.Printf("Users:         %d\n", stats.TotalUsers)
	fmt.Printf("Active loans:  %d\n", stats.ActiveLoans)
	fmt.Printf("Overdue loans: %d\n", stats.OverdueLoans)

	if len(stats.MostBorrowedBooks) > 0 {
		fmt.Println("\nMost borrowed:")
		for _, b := range stats.MostBorrowedBooks {
			fmt.Printf("  %s\n", b.Title)
		}
	}
	if len(stats.TopAuthors) > 0 {
		fmt.Println("\nTop authors:")
		for _, a := range stats.TopAuthors {
			fmt.Printf("  %s\n", a.FullName)
		}
	}
	return nil
}
