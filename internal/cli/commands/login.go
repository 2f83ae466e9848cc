package commands

import (
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/libhub-dev/libhub/internal/cli/guard"
	"github.com/libhub-dev/libhub/internal/cli/store"
)

// NewLoginCmd creates the login command
func NewLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with the Library Hub server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(email, password)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address (or set LIBHUB_EMAIL)")
	cmd.Flags().StringVar(&password, "password", "", "Password (or set LIBHUB_PASSWORD, will prompt if not provided)")

	return cmd
}

func runLogin(email, password string) error {
	activeRoute = guard.Login

	// Check for environment variables (useful for CI/CD)
	if email == "" {
		email = os.Getenv("LIBHUB_EMAIL")
	}
	if password == "" {
		password = os.Getenv("LIBHUB_PASSWORD")
	}

	if email == "" {
		return fmt.Errorf("email is required (use --email flag or LIBHUB_EMAIL env var)")
	}
	if err := validateEmail(email); err != nil {
		return err
	}

	e, err := newEnv()
	if err != nil {
		return err
	}

	// Prompt for password if not provided via flag or env var
	if password == "" {
		if term.IsTerminal(int(syscall.Stdin)) {
			fmt.Print("Password: ")
			bytePassword, err := term.ReadPassword(int(syscall.Stdin))
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			password = string(bytePassword)
			fmt.Println()
		} else {
			return fmt.Errorf("password is required in non-interactive mode (use --password flag or LIBHUB_PASSWORD env var)")
		}
	}

	fmt.Printf("Logging in to %s...\n", e.cfg.ServerURL)

	profile, err := e.sess.Login(cmdContext(), email, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	fmt.Println("✓ Login successful!")
	fmt.Printf("  User: %s (%s)\n", profile.FullName, profile.Email)
	if profile.Role == store.RoleAdmin {
		fmt.Println("  Role: Admin")
	}

	return nil
}
