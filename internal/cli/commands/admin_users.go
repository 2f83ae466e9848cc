package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/libhub-dev/libhub/internal/cli/client"
	"github.com/libhub-dev/libhub/internal/cli/guard"
)

func newAdminUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage member accounts",
	}

	var page, size int
	var status, role string
	lsCmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminUsersList(client.ListUsersOptions{
				Status: status,
				Role:   role,
				Page:   page,
				Size:   size,
			})
		},
	}
	lsCmd.Flags().IntVar(&page, "page", 0, "Page number (starting at 0)")
	lsCmd.Flags().IntVar(&size, "size", 20, "Page size")
	lsCmd.Flags().StringVar(&status, "status", "", "Filter by status (ACTIVE, BANNED, INACTIVE)")
	lsCmd.Flags().StringVar(&role, "role", "", "Filter by role (ADMIN, MEMBER)")
	cmd.AddCommand(lsCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "get <user-id>",
		Short: "Show a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminUsersGet(args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "role <user-id> <ADMIN|MEMBER>",
		Short: "Change a user's role",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminUsersRole(args[0], args[1])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status <user-id> <ACTIVE|BANNED|INACTIVE>",
		Short: "Change a user's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminUsersStatus(args[0], args[1])
		},
	})

	return cmd
}

func runAdminUsersList(opts client.ListUsersOptions) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	if ok, err := e.ensureRoute(guard.AdminUsers); !ok {
		return err
	}

	users, err := e.api.ListUsers(cmdContext(), opts)
	if err != nil {
		return err
	}

	if len(users.Content) == 0 {
		fmt.Println("No users found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\tSTATUS")
	fmt.Fprintln(w, "──\t────\t─────\t────\t──────")
	for _, u := range users.Content {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", u.ID, u.FullName, u.Email, u.Role, u.Status)
	}
	w.Flush()
	return nil
}

func runAdminUsersGet(arg string) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}

	e, err := newEnv()
	if err != nil {
		return err
	}
	if ok, err := e.ensureRoute(guard.AdminUsers); !ok {
		return err
	}

	user, err := e.api.GetUser(cmdContext(), id)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)\n", user.FullName, user.Email)
	fmt.Printf("Role:    %s\n", user.Role)
	fmt.Printf("Status:  %s\n", user.Status)
	fmt.Printf("Joined:  %s\n", user.CreatedAt)
	return nil
}

func runAdminUsersRole(arg, role string) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}
	if role != client.RoleAdmin && role != client.RoleMember {
		return fmt.Errorf("invalid role %q (use ADMIN or MEMBER)", role)
	}

	e, err := newEnv()
	if err != nil {
		return err
	}
	if ok, err := e.ensureRoute(guard.AdminUsers); !ok {
		return err
	}

	user, err := e.api.UpdateUserRole(cmdContext(), id, role)
	if err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}

	fmt.Printf("✓ %s is now %s.\n", user.FullName, user.Role)
	return nil
}

func runAdminUsersStatus(arg, status string) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}
	switch status {
	case client.StatusActive, client.StatusBanned, client.StatusInactive:
	default:
		return fmt.Errorf("invalid status %q (use ACTIVE, BANNED or INACTIVE)", status)
	}

	e, err := newEnv()
	if err != nil {
		return err
	}
	if ok, err := e.ensureRoute(guard.AdminUsers); !ok {
		return err
	}

	user, err := e.api.UpdateUserStatus(cmdContext(), id, status)
	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	fmt.Printf("✓ %s is now %s.\n", user.FullName, user.Status)
	return nil
}
