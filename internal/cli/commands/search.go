package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/libhub-dev/libhub/internal/cli/client"
	"github.com/libhub-dev/libhub/internal/cli/guard"
)

// NewSearchCmd creates the search command
func NewSearchCmd() *cobra.Command {
	var (
		title, isbn, author, category, publisher string
		minYear, maxYear                         int
		page, size                               int
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search books by criteria",
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria := client.BookSearchCriteria{
				Title:     optional(title),
				ISBN:      optional(isbn),
				Author:    optional(author),
				Category:  optional(category),
				Publisher: optional(publisher),
			}
			if minYear != 0 {
				criteria.MinYear = &minYear
			}
			if maxYear != 0 {
				criteria.MaxYear = &maxYear
			}
			return runSearch(criteria, page, size)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Title contains")
	cmd.Flags().StringVar(&isbn, "isbn", "", "Exact ISBN")
	cmd.Flags().StringVar(&author, "author", "", "Author name contains")
	cmd.Flags().StringVar(&category, "category", "", "Category name")
	cmd.Flags().StringVar(&publisher, "publisher", "", "Publisher name")
	cmd.Flags().IntVar(&minYear, "min-year", 0, "Earliest publication year")
	cmd.Flags().IntVar(&maxYear, "max-year", 0, "Latest publication year")
	cmd.Flags().IntVar(&page, "page", 0, "Page number (starting at 0)")
	cmd.Flags().IntVar(&size, "size", 20, "Page size")

	cmd.AddCommand(newAdvancedSearchCmd())
	return cmd
}

func newAdvancedSearchCmd() *cobra.Command {
	var opts client.AdvancedSearchOptions

	cmd := &cobra.Command{
		Use:   "advanced",
		Short: "Cross-resource search (category, author, borrower)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdvancedSearch(opts)
		},
	}

	cmd.Flags().StringVar(&opts.CategoryName, "category", "", "Category name")
	cmd.Flags().StringVar(&opts.AuthorName, "author", "", "Author name")
	cmd.Flags().StringVar(&opts.UserID, "user", "", "Borrower user id")
	cmd.Flags().StringVar(&opts.Title, "title", "", "Title contains")

	return cmd
}

func runSearch(criteria client.BookSearchCriteria, page, size int) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	if ok, err := e.ensureRoute(guard.Search); !ok {
		return err
	}

	books, err := e.api.SearchBooks(cmdContext(), criteria, page, size)
	if err != nil {
		return err
	}

	if len(books.Content) == 0 {
		fmt.Println("No books matched.")
		return nil
	}

	printBookTable(books.Content)
	fmt.Printf("\nPage %d of %d (%d matches)\n", books.Number+1, books.TotalPages, books.TotalElements)
	return nil
}

func runAdvancedSearch(opts client.AdvancedSearchOptions) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	if ok, err := e.ensureRoute(guard.Search); !ok {
		return err
	}

	books, err := e.api.AdvancedSearch(cmdContext(), opts)
	if err != nil {
		return err
	}

	if len(books) == 0 {
		fmt.Println("No books matched.")
		return nil
	}

	printBookTable(books)
	return nil
}
