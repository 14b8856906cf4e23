package commands

import (
	"fmt"
	"os"

	"catalog-service/config"
	"catalog-service/internal/store"
	"catalog-service/internal/util"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	dbURL   string
	verbose bool

	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "catalogctl",
	Short: "Catalog maintenance tool",
	Long: `catalogctl manages the catalog database offline.

Subcommands:
  migrate - Apply or roll back schema migrations
  seed    - Replace the catalog with the built-in phone families`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()
		if dbURL == "" {
			dbURL = cfg.Database.URL
		}

		level := cfg.Server.LogLevel
		if verbose {
			level = "debug"
		}
		return util.InitLogger(cfg.Server.Env, level)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		util.SyncLogger()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbURL, "db", "", "Database connection URL (defaults to DATABASE_URL)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}

func openStore() (*store.Store, error) {
	return store.NewStore(dbURL)
}
