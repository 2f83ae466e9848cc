package commands

import (
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/libhub-dev/libhub/internal/cli/client"
	"github.com/libhub-dev/libhub/internal/cli/guard"
)

// NewJoinCmd creates the join command
func NewJoinCmd() *cobra.Command {
	var email, password, fullName string

	cmd := &cobra.Command{
		Use:   "join",
		Short: "Register a new member account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJoin(email, password, fullName)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password (will prompt if not provided)")
	cmd.Flags().StringVar(&fullName, "name", "", "Full name")

	return cmd
}

func runJoin(email, password, fullName string) error {
	activeRoute = guard.Join

	if password == "" && term.IsTerminal(int(syscall.Stdin)) {
		fmt.Print("Password: ")
		bytePassword, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		password = string(bytePassword)
		fmt.Println()
	}

	if err := validateJoin(joinInput{Email: email, Password: password, FullName: fullName}); err != nil {
		return err
	}

	e, err := newEnv()
	if err != nil {
		return err
	}

	user, err := e.api.Register(cmdContext(), client.RegisterRequest{
		Email:    email,
		Password: password,
		FullName: fullName,
	})
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	fmt.Printf("✓ Welcome, %s! Account %d created.\n", user.FullName, user.ID)
	fmt.Println("Log in with: libhub login --email", user.Email)
	return nil
}
