package commands

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/libhub-dev/libhub/internal/cli/client"
	"github.com/libhub-dev/libhub/internal/cli/guard"
)

// NewBooksCmd creates the books command group
func NewBooksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "books",
		Short: "Browse the book catalog",
	}

	var page, size int
	lsCmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List books",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBooksList(page, size)
		},
	}
	lsCmd.Flags().IntVar(&page, "page", 0, "Page number (starting at 0)")
	lsCmd.Flags().IntVar(&size, "size", 20, "Page size")

	getCmd := &cobra.Command{
		Use:   "get <book-id>",
		Short: "Show book details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBooksGet(args[0])
		},
	}

	cmd.AddCommand(lsCmd)
	cmd.AddCommand(getCmd)
	return cmd
}

func runBooksList(page, size int) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	if ok, err := e.ensureRoute(guard.Books); !ok {
		return err
	}

	books, err := e.api.ListBooks(cmdContext(), page, size)
	if err != nil {
		return err
	}

	if len(books.Content) == 0 {
		fmt.Println("No books found.")
		return nil
	}

	printBookTable(books.Content)
	fmt.Printf("\nPage %d of %d (%d books total)\n", books.Number+1, books.TotalPages, books.TotalElements)
	return nil
}

func runBooksGet(arg string) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}

	e, err := newEnv()
	if err != nil {
		return err
	}
	if ok, err := e.ensureRoute(guard.BookDetail); !ok {
		return err
	}

	book, err := e.api.GetBook(cmdContext(), id)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%d)\n", book.Title, book.PublicationYear)
	fmt.Printf("ISBN:      %s\n", book.ISBN)
	fmt.Printf("Publisher: %s\n", book.Publisher.Name)
	fmt.Printf("Authors:   %s\n", authorNames(book.Authors))
	fmt.Printf("Categories: %s\n", categoryNames(book.Categories))
	if book.Description != nil && *book.Description != "" {
		fmt.Printf("\n%s\n", *book.Description)
	}
	if book.ReviewSummary != nil {
		fmt.Printf("\nRating: %.1f (%d reviews)\n", book.ReviewSummary.AverageRating, book.ReviewSummary.TotalReviews)
	}
	return nil
}

func printBookTable(books []client.Book) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tYEAR\tAUTHORS\tPUBLISHER")
	fmt.Fprintln(w, "──\t─────\t────\t───────\t─────────")
	for _, b := range books {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n",
			b.ID,
			b.Title,
			b.PublicationYear,
			authorNames(b.Authors),
			b.Publisher.Name,
		)
	}
	w.Flush()
}

func authorNames(authors []client.Author) string {
	names := make([]string, len(authors))
	for i, a := range authors {
		names[i] = a.FullName
	}
	return strings.Join(names, ", ")
}

func categoryNames(categories []client.Category) string {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}
	return strings.Join(names, ", ")
}
