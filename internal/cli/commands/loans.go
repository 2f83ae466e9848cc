package commands

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/libhub-dev/libhub/internal/cli/client"
	"github.com/libhub-dev/libhub/internal/cli/guard"
)

// NewLoansCmd creates the loans command group
func NewLoansCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loans",
		Short: "Manage your loans",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "active",
		Short: "List your active loans",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoansActive()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "history",
		Short: "Show your full loan history",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoansHistory()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <loan-id>",
		Short: "Show loan details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoansGet(args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "return <loan-id>",
		Short: "Return a borrowed book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoansReturn(args[0])
		},
	})

	var due string
	renewCmd := &cobra.Command{
		Use:   "renew <loan-id>",
		Short: "Renew a loan with a new due date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoansRenew(args[0], due)
		},
	}
	renewCmd.Flags().StringVar(&due, "due", "", "New due date (YYYY-MM-DD, defaults to two weeks out)")
	cmd.AddCommand(renewCmd)

	return cmd
}

func runLoansActive() error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	if ok, err := e.ensureRoute(guard.Loans); !ok {
		return err
	}

	profile, err := e.currentProfile()
	if err != nil {
		return err
	}

	loans, err := e.api.ActiveLoans(cmdContext(), profile.ID)
	if err != nil {
		return err
	}

	if len(loans) == 0 {
		fmt.Println("No active loans.")
		fmt.Println("\nBorrow a book with: libhub borrow <book-id>")
		return nil
	}

	printLoanTable(loans)
	return nil
}

func runLoansHistory() error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	if ok, err := e.ensureRoute(guard.Loans); !ok {
		return err
	}

	profile, err := e.currentProfile()
	if err != nil {
		return err
	}

	loans, err := e.api.LoanHistory(cmdContext(), profile.ID)
	if err != nil {
		return err
	}

	if len(loans) == 0 {
		fmt.Println("No loans yet.")
		return nil
	}

	printLoanTable(loans)
	return nil
}

func runLoansGet(arg string) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}

	e, err := newEnv()
	if err != nil {
		return err
	}
	if ok, err := e.ensureRoute(guard.LoanDetail); !ok {
		return err
	}

	loan, err := e.api.GetLoan(cmdContext(), id)
	if err != nil {
		return err
	}

	fmt.Printf("Loan %d — %s\n", loan.ID, loan.Status)
	fmt.Printf("Book:     %s (%s)\n", loan.Book.Title, loan.Book.ISBN)
	fmt.Printf("Borrower: %s (%s)\n", loan.User.FullName, loan.User.Email)
	fmt.Printf("Borrowed: %s\n", loan.BorrowDate)
	fmt.Printf("Due:      %s\n", loan.DueDate)
	if loan.ReturnDate != nil {
		fmt.Printf("Returned: %s\n", *loan.ReturnDate)
	}
	return nil
}

func runLoansReturn(arg string) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}

	e, err := newEnv()
	if err != nil {
		return err
	}
	if ok, err := e.ensureRoute(guard.LoanDetail); !ok {
		return err
	}

	loan, err := e.api.ReturnBook(cmdContext(), id)
	if err != nil {
		return fmt.Errorf("failed to return book: %w", err)
	}

	fmt.Printf("✓ Returned %q.\n", loan.BookTitle)
	return nil
}

func runLoansRenew(arg, due string) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}

	dueDate, err := resolveDueDate(due)
	if err != nil {
		return err
	}

	e, err := newEnv()
	if err != nil {
		return err
	}
	if ok, err := e.ensureRoute(guard.LoanDetail); !ok {
		return err
	}

	loan, err := e.api.RenewLoan(cmdContext(), id, client.LoanRenewalRequest{NewDueDate: dueDate})
	if err != nil {
		return fmt.Errorf("failed to renew loan: %w", err)
	}

	fmt.Printf("✓ Loan %d renewed, now due %s.\n", loan.ID, loan.DueDate)
	return nil
}

// resolveDueDate accepts YYYY-MM-DD or a full RFC 3339 timestamp and
// defaults to two weeks from now.
func resolveDueDate(due string) (string, error) {
	if due == "" {
		return time.Now().AddDate(0, 0, 14).UTC().Format(time.RFC3339), nil
	}
	if t, err := time.Parse("2006-01-02", due); err == nil {
		return t.UTC().Format(time.RFC3339), nil
	}
	if t, err := time.Parse(time.RFC3339, due); err == nil {
		return t.UTC().Format(time.RFC3339), nil
	}
	return "", fmt.Errorf("invalid due date %q (use YYYY-MM-DD)", due)
}

func printLoanTable(loans []client.Loan) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tBOOK\tBORROWED\tDUE\tSTATUS")
	fmt.Fprintln(w, "──\t────\t────────\t───\t──────")
	for _, l := range loans {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			l.ID,
			l.BookTitle,
			l.BorrowDate,
			l.DueDate,
			l.Status,
		)
	}
	w.Flush()
}
