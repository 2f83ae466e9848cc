package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewLogoutCmd creates the logout command
func NewLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogout()
		},
	}
}

func runLogout() error {
	e, err := newEnv()
	if err != nil {
		return err
	}

	// Idempotent: logging out while logged out is fine.
	if err := e.sess.Logout(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	fmt.Println("✓ Logged out.")
	return nil
}
