package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/libhub-dev/libhub/internal/cli/client"
	"github.com/libhub-dev/libhub/internal/cli/guard"
)

// NewReviewsCmd creates the reviews command group
func NewReviewsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reviews",
		Short: "Read and write book reviews",
	}

	var page, size int
	var bookID int64
	lsCmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List reviews for a book",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReviewsList(bookID, page, size)
		},
	}
	lsCmd.Flags().Int64Var(&bookID, "book", 0, "Book id (required)")
	lsCmd.Flags().IntVar(&page, "page", 0, "Page number (starting at 0)")
	lsCmd.Flags().IntVar(&size, "size", 20, "Page size")
	_ = lsCmd.MarkFlagRequired("book")
	cmd.AddCommand(lsCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "mine",
		Short: "List your reviews",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReviewsMine()
		},
	})

	var rating int
	var comment string
	var addBookID int64
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Review a book",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReviewsAdd(addBookID, rating, comment)
		},
	}
	addCmd.Flags().Int64Var(&addBookID, "book", 0, "Book id (required)")
	addCmd.Flags().IntVar(&rating, "rating", 0, "Rating 1-5 (required)")
	addCmd.Flags().StringVar(&comment, "comment", "", "Review text")
	_ = addCmd.MarkFlagRequired("book")
	_ = addCmd.MarkFlagRequired("rating")
	cmd.AddCommand(addCmd)

	var editRating int
	var editComment string
	editCmd := &cobra.Command{
		Use:   "edit <review-id>",
		Short: "Update one of your reviews",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReviewsEdit(args[0], editRating, editComment)
		},
	}
	editCmd.Flags().IntVar(&editRating, "rating", 0, "Rating 1-5 (required)")
	editCmd.Flags().StringVar(&editComment, "comment", "", "Review text")
	_ = editCmd.MarkFlagRequired("rating")
	cmd.AddCommand(editCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <review-id>",
		Short: "Delete one of your reviews",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReviewsDelete(args[0])
		},
	})

	return cmd
}

func runReviewsList(bookID int64, page, size int) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	if ok, err := e.ensureRoute(guard.Reviews); !ok {
		return err
	}

	reviews, err := e.api.ReviewsByBook(cmdContext(), bookID, page, size)
	if err != nil {
		return err
	}

	if len(reviews.Content) == 0 {
		fmt.Println("No reviews yet.")
		return nil
	}

	printReviewTable(reviews.Content)

	avg, err := e.api.AverageRatingByBook(cmdContext(), bookID)
	if err == nil && avg != nil {
		fmt.Printf("\nAverage: %.1f across %d reviews\n", avg.AverageRating, avg.TotalReviews)
	}
	return nil
}

func runReviewsMine() error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	if ok, err := e.ensureRoute(guard.Reviews); !ok {
		return err
	}

	profile, err := e.currentProfile()
	if err != nil {
		return err
	}

	reviews, err := e.api.ReviewsByUser(cmdContext(), profile.ID)
	if err != nil {
		return err
	}

	if len(reviews) == 0 {
		fmt.Println("You have not reviewed any books yet.")
		return nil
	}

	printReviewTable(reviews)
	return nil
}

func runReviewsAdd(bookID int64, rating int, comment string) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}

	e, err := newEnv()
	if err != nil {
		return err
	}
	if ok, err := e.ensureRoute(guard.Reviews); !ok {
		return err
	}

	profile, err := e.currentProfile()
	if err != nil {
		return err
	}

	review, err := e.api.CreateReview(cmdContext(), client.ReviewRequest{
		UserID:  profile.ID,
		BookID:  bookID,
		Rating:  rating,
		Comment: optional(comment),
	})
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}

	fmt.Printf("✓ Reviewed %q: %d/5.\n", review.BookTitle, review.Rating)
	return nil
}

func runReviewsEdit(arg string, rating int, comment string) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}

	e, err := newEnv()
	if err != nil {
		return err
	}
	if ok, err := e.ensureRoute(guard.Reviews); !ok {
		return err
	}

	review, err := e.api.UpdateReview(cmdContext(), id, client.ReviewUpdate{
		Rating:  rating,
		Comment: optional(comment),
	})
	if err != nil {
		return fmt.Errorf("failed to update review: %w", err)
	}

	fmt.Printf("✓ Review %d updated.\n", review.ID)
	return nil
}

func runReviewsDelete(arg string) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}

	e, err := newEnv()
	if err != nil {
		return err
	}
	if ok, err := e.ensureRoute(guard.Reviews); !ok {
		return err
	}

	if err := e.api.DeleteReview(cmdContext(), id); err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}

	fmt.Printf("✓ Review %d deleted.\n", id)
	return nil
}

func printReviewTable(reviews []client.Review) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tBOOK\tRATING\tBY\tCOMMENT")
	fmt.Fprintln(w, "──\t────\t──────\t──\t───────")
	for _, r := range reviews {
		fmt.Fprintf(w, "%d\t%s\t%d/5\t%s\t%s\n",
			r.ID,
			r.BookTitle,
			r.Rating,
			r.UserFullName,
			strOrDash(r.Comment),
		)
	}
	w.Flush()
}
