package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/libhub-dev/libhub/internal/cli/client"
	"github.com/libhub-dev/libhub/internal/cli/guard"
)

func newAdminPublishersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publishers",
		Short: "Manage publishers",
	}

	var page, size int
	lsCmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List publishers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminPublishersList(page, size)
		},
	}
	lsCmd.Flags().IntVar(&page, "page", 0, "Page number (starting at 0)")
	lsCmd.Flags().IntVar(&size, "size", 20, "Page size")
	cmd.AddCommand(lsCmd)

	var name, website, address string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a publisher",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminPublishersAdd(name, website, address)
		},
	}
	addCmd.Flags().StringVar(&name, "name", "", "Publisher name (required)")
	addCmd.Flags().StringVar(&website, "website", "", "Website URL")
	addCmd.Flags().StringVar(&address, "address", "", "Postal address")
	_ = addCmd.MarkFlagRequired("name")
	cmd.AddCommand(addCmd)

	var editName, editWebsite, editAddress string
	editCmd := &cobra.Command{
		Use:   "edit <publisher-id>",
		Short: "Update a publisher",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminPublishersEdit(args[0], editName, editWebsite, editAddress)
		},
	}
	editCmd.Flags().StringVar(&editName, "name", "", "Publisher name (required)")
	editCmd.Flags().StringVar(&editWebsite, "website", "", "Website URL")
	editCmd.Flags().StringVar(&editAddress, "address", "", "Postal address")
	_ = editCmd.MarkFlagRequired("name")
	cmd.AddCommand(editCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <publisher-id>",
		Short: "Delete a publisher",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminPublishersDelete(args[0])
		},
	})

	return cmd
}

func runAdminPublishersList(page, size int) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	if ok, err := e.ensureRoute(guard.AdminPublishers); !ok {
		return err
	}

	publishers, err := e.api.ListPublishers(cmdContext(), page, size)
	if err != nil {
		return err
	}

	if len(publishers.Content) == 0 {
		fmt.Println("No publishers found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tWEBSITE")
	fmt.Fprintln(w, "──\t────\t───────")
	for _, p := range publishers.Content {
		fmt.Fprintf(w, "%d\t%s\t%s\n", p.ID, p.Name, strOrDash(p.Website))
	}
	w.Flush()
	return nil
}

func runAdminPublishersAdd(name, website, address string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	if ok, err := e.ensureRoute(guard.AdminPublishers); !ok {
		return err
	}

	publisher, err := e.api.CreatePublisher(cmdContext(), client.PublisherRequest{
		Name:    name,
		Website: optional(website),
		Address: optional(address),
	})
	if err != nil {
		return fmt.Errorf("failed to create publisher: %w", err)
	}

	fmt.Printf("✓ Publisher %q created (id %d).\n", publisher.Name, publisher.ID)
	return nil
}

func runAdminPublishersEdit(arg, name, website, address string) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}

	e, err := newEnv()
	if err != nil {
		return err
	}
	if ok, err := e.ensureRoute(guard.AdminPublishers); !ok {
		return err
	}

	publisher, err := e.api.UpdatePublisher(cmdContext(), id, client.PublisherRequest{
		Name:    name,
		Website: optional(website),
		Address: optional(address),
	})
	if err != nil {
		return fmt.Errorf("failed to update publisher: %w", err)
	}

	fmt.Printf("✓ Publisher %d updated.\n", publisher.ID)
	return nil
}

func runAdminPublishersDelete(arg string) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}

	e, err := newEnv()
	if err != nil {
		return err
	}
	if ok, err := e.ensureRoute(guard.AdminPublishers); !ok {
		return err
	}

	if err := e.api.DeletePublisher(cmdContext(), id); err != nil {
		return fmt.Errorf("failed to delete publisher: %w", err)
	}

	fmt.Printf("✓ Publisher %d deleted.\n", id)
	return nil
}
