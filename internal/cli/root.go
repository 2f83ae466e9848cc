package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/libhub-dev/libhub/internal/cli/commands"
	"github.com/libhub-dev/libhub/internal/cli/events"
	"github.com/libhub-dev/libhub/internal/cli/guard"
)

var version = "dev" // Will be set during build

var rootCmd = &cobra.Command{
	Use:   "libhub",
	Short: "LibHub - Library management from your terminal",
	Long: `LibHub CLI - Browse the catalog, borrow books, and manage your library.

Members can search books, track loans, and leave reviews. Administrators
get the full back-office under 'libhub admin'.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging()
	},
}

// configureLogging keeps the request log silent unless LIBHUB_DEBUG is
// set, in which case every API call is traced to stderr.
func configureLogging() {
	if os.Getenv("LIBHUB_DEBUG") == "" {
		zerolog.SetGlobalLevel(zerolog.Disabled)
		return
	}
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func init() {
	// Any command can discover mid-flight that the stored credential is
	// no longer accepted. The session is already wiped by then; all that
	// is left for the shell is telling the user how to get back in.
	events.Default.Subscribe(func() {
		active := commands.ActiveRoute()
		if active.Name == guard.Login.Name {
			return
		}
		fmt.Fprintln(os.Stderr, "Session expired. Run 'libhub login', then retry.")
		if active.Path != guard.Home.Path {
			fmt.Fprintf(os.Stderr, "You were on %s.\n", active.Path)
		}
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("libhub version %s\n", version)
		},
	})

	rootCmd.AddCommand(commands.NewJoinCmd())
	rootCmd.AddCommand(commands.NewLoginCmd())
	rootCmd.AddCommand(commands.NewLogoutCmd())
	rootCmd.AddCommand(commands.NewWhoamiCmd())
	rootCmd.AddCommand(commands.NewServerCmd())
	rootCmd.AddCommand(commands.NewBooksCmd())
	rootCmd.AddCommand(commands.NewSearchCmd())
	rootCmd.AddCommand(commands.NewBorrowCmd())
	rootCmd.AddCommand(commands.NewLoansCmd())
	rootCmd.AddCommand(commands.NewReviewsCmd())
	rootCmd.AddCommand(commands.NewAdminCmd())
}

// Execute runs the root command
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
