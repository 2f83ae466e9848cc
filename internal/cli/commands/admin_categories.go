package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/libhub-dev/libhub/internal/cli/client"
	"github.com/libhub-dev/libhub/internal/cli/guard"
)

func newAdminCategoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage categories",
	}

	var page, size int
	lsCmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminCategoriesList(page, size)
		},
	}
	lsCmd.Flags().IntVar(&page, "page", 0, "Page number (starting at 0)")
	lsCmd.Flags().IntVar(&size, "size", 20, "Page size")
	cmd.AddCommand(lsCmd)

	var name, description string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a category",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminCategoriesAdd(name, description)
		},
	}
	addCmd.Flags().StringVar(&name, "name", "", "Category name (required)")
	addCmd.Flags().StringVar(&description, "description", "", "Description")
	_ = addCmd.MarkFlagRequired("name")
	cmd.AddCommand(addCmd)

	var editName, editDescription string
	editCmd := &cobra.Command{
		Use:   "edit <category-id>",
		Short: "Update a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminCategoriesEdit(args[0], editName, editDescription)
		},
	}
	editCmd.Flags().StringVar(&editName, "name", "", "Category name (required)")
	editCmd.Flags().StringVar(&editDescription, "description", "", "Description")
	_ = editCmd.MarkFlagRequired("name")
	cmd.AddCommand(editCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <category-id>",
		Short: "Delete a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminCategoriesDelete(args[0])
		},
	})

	return cmd
}

func runAdminCategoriesList(page, size int) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	if ok, err := e.ensureRoute(guard.AdminCategories); !ok {
		return err
	}

	categories, err := e.api.ListCategories(cmdContext(), page, size)
	if err != nil {
		return err
	}

	if len(categories.Content) == 0 {
		fmt.Println("No categories found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION")
	fmt.Fprintln(w, "──\t────\t───────────")
	for _, c := range categories.Content {
		fmt.Fprintf(w, "%d\t%s\t%s\n", c.ID, c.Name, strOrDash(c.Description))
	}
	w.Flush()
	return nil
}

func runAdminCategoriesAdd(name, description string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	if ok, err := e.ensureRoute(guard.AdminCategories); !ok {
		return err
	}

	category, err := e.api.CreateCategory(cmdContext(), client.CategoryRequest{
		Name:        name,
		Description: optional(description),
	})
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	fmt.Printf("✓ Category %q created (id %d).\n", category.Name, category.ID)
	return nil
}

func runAdminCategoriesEdit(arg, name, description string) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}

	e, err := newEnv()
	if err != nil {
		return err
	}
	if ok, err := e.ensureRoute(guard.AdminCategories); !ok {
		return err
	}

	category, err := e.api.UpdateCategory(cmdContext(), id, client.CategoryRequest{
		Name:        name,
		Description: optional(description),
	})
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}

	fmt.Printf("✓ Category %d updated.\n", category.ID)
	return nil
}

func runAdminCategoriesDelete(arg string) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}

	e, err := newEnv()
	if err != nil {
		return err
	}
	if ok, err := e.ensureRoute(guard.AdminCategories); !ok {
		return err
	}

	if err := e.api.DeleteCategory(cmdContext(), id); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	fmt.Printf("✓ Category %d deleted.\n", id)
	return nil
}
