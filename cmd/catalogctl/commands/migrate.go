package commands

import (
	"strconv"

	"github.com/spf13/cobra"
)

var steps int

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Run the embedded schema migrations.

Subcommands:
  up      - Apply pending migrations
  down    - Roll back migrations
  status  - Show migration status`,
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate(cmd, "up")
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back migrations",
	Long: `Roll back applied migrations.

Examples:
  catalogctl migrate down            # Roll back the last migration
  catalogctl migrate down --steps 0  # Roll back everything`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if steps == 0 {
			return runMigrate(cmd, "reset")
		}
		for i := 0; i < steps; i++ {
			if err := runMigrate(cmd, "down"); err != nil {
				return err
			}
		}
		return nil
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate(cmd, "status")
	},
}

var migrateToCmd = &cobra.Command{
	Use:   "up-to VERSION",
	Short: "Apply migrations up to and including VERSION",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
			return err
		}
		return runMigrate(cmd, "up-to", args[0])
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateStatusCmd, migrateToCmd)

	migrateDownCmd.Flags().IntVar(&steps, "steps", 1, "Number of migrations to roll back, 0 for all")
}

func runMigrate(cmd *cobra.Command, command string, args ...string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	return db.Migrate(cmd.Context(), command, args...)
}
