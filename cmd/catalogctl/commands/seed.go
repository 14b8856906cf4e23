package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"catalog-service/internal/broker"
	"catalog-service/internal/models"
	"catalog-service/internal/seed"
	"catalog-service/internal/util"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Seed flags
	publish    bool
	seedDryRun bool
)

// seedCmd replaces the catalog with the built-in families
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace the catalog with the built-in phone families",
	Long: `Delete every product and EMI plan, then recreate the catalog from the
built-in family definitions. Must not run against a live server's traffic.

Examples:
  catalogctl seed                # Reseed and announce CATALOG_SEEDED
  catalogctl seed --publish=false
  catalogctl seed --dry-run      # Print the expanded catalog only`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd)
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().BoolVar(&publish, "publish", true, "Publish a CATALOG_SEEDED event so servers drop cached entries")
	seedCmd.Flags().BoolVar(&seedDryRun, "dry-run", false, "Print the expanded catalog without writing it")
}

func runSeed(cmd *cobra.Command) error {
	families := seed.DefaultCatalog()

	if seedDryRun {
		products, err := seed.Expand(families)
		if err != nil {
			return err
		}
		printProducts(products)
		return nil
	}

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Migrate(cmd.Context(), "up"); err != nil {
		return err
	}

	var publisher seed.EventPublisher
	if publish {
		producer := broker.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.TopicCatalog)
		defer producer.Close()
		publisher = broker.NewEventPublisher(producer)
	}

	result, err := seed.NewSeeder(db, publisher).Run(cmd.Context(), families)
	if err != nil {
		return err
	}

	util.GetLogger().Info("Seed complete",
		zap.Int("products", len(result.Products)),
		zap.Int("plans", result.Plans))
	return nil
}

func printProducts(products []models.Product) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SLUG\tVARIANT\tCOLOR\tMRP\tPRICE\tPLANS")
	for _, p := range products {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\n", p.Slug, p.Variant, p.Color, p.MRP, p.Price, len(p.EMIPlans))
	}
	w.Flush()
}
