package commands

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/libhub-dev/libhub/internal/cli/client"
	"github.com/libhub-dev/libhub/internal/cli/guard"
)

// NewBorrowCmd creates the borrow command
func NewBorrowCmd() *cobra.Command {
	var due string

	cmd := &cobra.Command{
		Use:   "borrow [book-id]",
		Short: "Borrow a book",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bookArg := ""
			if len(args) == 1 {
				bookArg = args[0]
			}
			return runBorrow(bookArg, due)
		},
	}

	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD, defaults to two weeks out)")

	return cmd
}

func runBorrow(bookArg, due string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	if ok, err := e.ensureRoute(guard.LoanNew); !ok {
		return err
	}

	profile, err := e.currentProfile()
	if err != nil {
		return err
	}

	var bookID int64
	if bookArg != "" {
		bookID, err = parseID(bookArg)
		if err != nil {
			return err
		}
	} else {
		bookID, err = pickBook(e)
		if err != nil {
			return err
		}
	}

	dueDate, err := resolveDueDate(due)
	if err != nil {
		return err
	}

	loan, err := e.api.BorrowBook(cmdContext(), client.LoanRequest{
		UserID:  profile.ID,
		BookID:  bookID,
		DueDate: dueDate,
	})
	if err != nil {
		return fmt.Errorf("failed to borrow book: %w", err)
	}

	fmt.Printf("✓ Borrowed %q, due %s.\n", loan.BookTitle, loan.DueDate)
	return nil
}

// pickBook prompts an interactive selection over the first catalog page.
func pickBook(e *cmdEnv) (int64, error) {
	books, err := e.api.ListBooks(cmdContext(), 0, 50)
	if err != nil {
		return 0, err
	}
	if len(books.Content) == 0 {
		return 0, fmt.Errorf("no books available")
	}

	items := make([]string, len(books.Content))
	for i, b := range books.Content {
		items[i] = fmt.Sprintf("%s (%d)", b.Title, b.PublicationYear)
	}

	prompt := promptui.Select{
		Label: "Select a book",
		Items: items,
		Size:  10,
	}

	idx, _, err := prompt.Run()
	if err != nil {
		return 0, fmt.Errorf("selection cancelled: %w", err)
	}

	return books.Content[idx].ID, nil
}
