package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/libhub-dev/libhub/internal/cli/client"
	"github.com/libhub-dev/libhub/internal/cli/guard"
)

func newAdminBooksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "books",
		Short: "Manage the catalog",
	}

	var add bookFlags
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a book",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminBooksAdd(add)
		},
	}
	add.register(addCmd)
	_ = addCmd.MarkFlagRequired("title")
	_ = addCmd.MarkFlagRequired("isbn")
	_ = addCmd.MarkFlagRequired("year")
	_ = addCmd.MarkFlagRequired("publisher")
	cmd.AddCommand(addCmd)

	var edit bookFlags
	editCmd := &cobra.Command{
		Use:   "edit <book-id>",
		Short: "Update a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminBooksEdit(args[0], edit)
		},
	}
	edit.register(editCmd)
	cmd.AddCommand(editCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <book-id>",
		Short: "Delete a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminBooksDelete(args[0])
		},
	})

	return cmd
}

type bookFlags struct {
	title       string
	isbn        string
	year        int
	description string
	coverURL    string
	publisherID int64
	authorIDs   []int64
	categoryIDs []int64
}

func (f *bookFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "Title")
	cmd.Flags().StringVar(&f.isbn, "isbn", "", "ISBN")
	cmd.Flags().IntVar(&f.year, "year", 0, "Publication year")
	cmd.Flags().StringVar(&f.description, "description", "", "Description")
	cmd.Flags().StringVar(&f.coverURL, "cover-url", "", "Cover image URL")
	cmd.Flags().Int64Var(&f.publisherID, "publisher", 0, "Publisher id")
	cmd.Flags().Int64SliceVar(&f.authorIDs, "authors", nil, "Author ids")
	cmd.Flags().Int64SliceVar(&f.categoryIDs, "categories", nil, "Category ids")
}

func runAdminBooksAdd(f bookFlags) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	if ok, err := e.ensureRoute(guard.AdminBooks); !ok {
		return err
	}

	book, err := e.api.CreateBook(cmdContext(), client.BookRequest{
		Title:           f.title,
		ISBN:            f.isbn,
		PublicationYear: f.year,
		Description:     optional(f.description),
		CoverImageURL:   optional(f.coverURL),
		PublisherID:     f.publisherID,
		AuthorIDs:       f.authorIDs,
		CategoryIDs:     f.categoryIDs,
	})
	if err != nil {
		return fmt.Errorf("failed to create book: %w", err)
	}

	fmt.Printf("✓ Book %q created (id %d).\n", book.Title, book.ID)
	return nil
}

func runAdminBooksEdit(arg string, f bookFlags) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}

	e, err := newEnv()
	if err != nil {
		return err
	}
	if ok, err := e.ensureRoute(guard.AdminBooks); !ok {
		return err
	}

	// Only flags actually set travel in the update body.
	update := client.BookUpdate{
		Title:         optional(f.title),
		ISBN:          optional(f.isbn),
		Description:   optional(f.description),
		CoverImageURL: optional(f.coverURL),
		AuthorIDs:     f.authorIDs,
		CategoryIDs:   f.categoryIDs,
	}
	if f.year != 0 {
		update.PublicationYear = &f.year
	}
	if f.publisherID != 0 {
		update.PublisherID = &f.publisherID
	}

	book, err := e.api.UpdateBook(cmdContext(), id, update)
	if err != nil {
		return fmt.Errorf("failed to update book: %w", err)
	}

	fmt.Printf("✓ Book %d updated.\n", book.ID)
	return nil
}

func runAdminBooksDelete(arg string) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}

	e, err := newEnv()
	if err != nil {
		return err
	}
	if ok, err := e.ensureRoute(guard.AdminBooks); !ok {
		return err
	}

	if err := e.api.DeleteBook(cmdContext(), id); err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	fmt.Printf("✓ Book %d deleted.\n", id)
	return nil
}
