package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/libhub-dev/libhub/internal/cli/store"
)

// NewWhoamiCmd creates the whoami command
func NewWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWhoami()
		},
	}
}

func runWhoami() error {
	e, err := newEnv()
	if err != nil {
		return err
	}

	if !e.sess.IsAuthenticated() {
		fmt.Println("Not logged in.")
		return nil
	}

	// Always reconcile against server truth; the cached profile may be
	// stale, and an expired credential discovered here is purged.
	profile := e.sess.FetchUser(cmdContext())
	if profile == nil {
		fmt.Println("Session expired. Run 'libhub login' to sign in again.")
		return nil
	}

	fmt.Printf("%s (%s)\n", profile.FullName, profile.Email)
	if profile.Role == store.RoleAdmin {
		fmt.Println("Role: Admin")
	} else {
		fmt.Println("Role: Member")
	}

	return nil
}
