package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/libhub-dev/libhub/internal/cli/config"
)

// NewServerCmd creates the server command
func NewServerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "server [url]",
		Short: "Show or set the Library Hub server URL",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				fmt.Println(cfg.ServerURL)
				return nil
			}

			if err := config.SetServer(args[0]); err != nil {
				return fmt.Errorf("failed to save server URL: %w", err)
			}
			fmt.Printf("✓ Server set to %s\n", args[0])
			return nil
		},
	}
}
