package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/libhub-dev/libhub/internal/cli/client"
	"github.com/libhub-dev/libhub/internal/cli/guard"
)

func newAdminAuthorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "authors",
		Short: "Manage authors",
	}

	var page, size int
	var search string
	lsCmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List authors",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminAuthorsList(page, size, search)
		},
	}
	lsCmd.Flags().IntVar(&page, "page", 0, "Page number (starting at 0)")
	lsCmd.Flags().IntVar(&size, "size", 20, "Page size")
	lsCmd.Flags().StringVar(&search, "search", "", "Filter by name")
	cmd.AddCommand(lsCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "get <author-id>",
		Short: "Show author details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminAuthorsGet(args[0])
		},
	})

	var name, bio string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add an author",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminAuthorsAdd(name, bio)
		},
	}
	addCmd.Flags().StringVar(&name, "name", "", "Full name (required)")
	addCmd.Flags().StringVar(&bio, "bio", "", "Short biography")
	_ = addCmd.MarkFlagRequired("name")
	cmd.AddCommand(addCmd)

	var editName, editBio string
	editCmd := &cobra.Command{
		Use:   "edit <author-id>",
		Short: "Update an author",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminAuthorsEdit(args[0], editName, editBio)
		},
	}
	editCmd.Flags().StringVar(&editName, "name", "", "Full name (required)")
	editCmd.Flags().StringVar(&editBio, "bio", "", "Short biography")
	_ = editCmd.MarkFlagRequired("name")
	cmd.AddCommand(editCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <author-id>",
		Short: "Delete an author",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminAuthorsDelete(args[0])
		},
	})

	return cmd
}

func runAdminAuthorsList(page, size int, search string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	if ok, err := e.ensureRoute(guard.AdminAuthors); !ok {
		return err
	}

	authors, err := e.api.ListAuthors(cmdContext(), page, size, search)
	if err != nil {
		return err
	}

	if len(authors.Content) == 0 {
		fmt.Println("No authors found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tBIO")
	fmt.Fprintln(w, "──\t────\t───")
	for _, a := range authors.Content {
		fmt.Fprintf(w, "%d\t%s\t%s\n", a.ID, a.FullName, strOrDash(a.Bio))
	}
	w.Flush()
	return nil
}

func runAdminAuthorsGet(arg string) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}

	e, err := newEnv()
	if err != nil {
		return err
	}
	if ok, err := e.ensureRoute(guard.AdminAuthors); !ok {
		return err
	}

	author, err := e.api.GetAuthor(cmdContext(), id)
	if err != nil {
		return err
	}

	fmt.Printf("%s (id %d)\n", author.FullName, author.ID)
	if author.Bio != nil && *author.Bio != "" {
		fmt.Printf("\n%s\n", *author.Bio)
	}
	if len(author.Books) > 0 {
		fmt.Println("\nBooks:")
		for _, b := range author.Books {
			fmt.Printf("  %d  %s\n", b.ID, b.Title)
		}
	}
	return nil
}

func runAdminAuthorsAdd(name, bio string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	if ok, err := e.ensureRoute(guard.AdminAuthors); !ok {
		return err
	}

	author, err := e.api.CreateAuthor(cmdContext(), client.AuthorRequest{
		FullName: name,
		Bio:      optional(bio),
	})
	if err != nil {
		return fmt.Errorf("failed to create author: %w", err)
	}

	fmt.Printf("✓ Author %q created (id %d).\n", author.FullName, author.ID)
	return nil
}

func runAdminAuthorsEdit(arg, name, bio string) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}

	e, err := newEnv()
	if err != nil {
		return err
	}
	if ok, err := e.ensureRoute(guard.AdminAuthors); !ok {
		return err
	}

	author, err := e.api.UpdateAuthor(cmdContext(), id, client.AuthorRequest{
		FullName: name,
		Bio:      optional(bio),
	})
	if err != nil {
		return fmt.Errorf("failed to update author: %w", err)
	}

	fmt.Printf("✓ Author %d updated.\n", author.ID)
	return nil
}

func runAdminAuthorsDelete(arg string) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}

	e, err := newEnv()
	if err != nil {
		return err
	}
	if ok, err := e.ensureRoute(guard.AdminAuthors); !ok {
		return err
	}

	if err := e.api.DeleteAuthor(cmdContext(), id); err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}

	fmt.Printf("✓ Author %d deleted.\n", id)
	return nil
}
