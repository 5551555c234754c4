package catalogseed

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	customerpostgres "github.com/Apurer/go-gin-orders-api/internal/domains/customers/adapters/persistence/postgres"
	productpostgres "github.com/Apurer/go-gin-orders-api/internal/domains/products/adapters/persistence/postgres"
	"github.com/Apurer/go-gin-orders-api/internal/platform/migrations"
	platformpostgres "github.com/Apurer/go-gin-orders-api/internal/platform/postgres"
)

// Stores are the writers a seeding run targets.
type Stores struct {
	Customers CustomerWriter
	Products  ProductWriter
}

// StoreOpener returns the target stores plus a cleanup function.
type StoreOpener func(ctx context.Context, dsn string, logger *slog.Logger) (Stores, func(), error)

// NewRootCmd returns the catalog-seed command writing to Postgres.
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithStores(OpenPostgresStores)
}

// NewRootCmdWithStores returns the catalog-seed command writing through open.
func NewRootCmdWithStores(open StoreOpener) *cobra.Command {
	var (
		file   string
		dsn    string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:           "catalog-seed",
		Short:         "Load customers and products from a fixture file",
		Long:          "Reads a YAML fixture file and upserts its customers and products into the order service database.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("opening fixtures: %w", err)
			}
			defer f.Close()

			catalog, err := Load(f)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if dryRun {
				for _, c := range catalog.Customers {
					fmt.Fprintf(out, "customer %s %s <%s>\n", c.ID, c.Name, c.Email)
				}
				for _, p := range catalog.Products {
					fmt.Fprintf(out, "product %s %s price=%s quantity=%d\n", p.ID, p.Name, p.Price.StringFixed(2), p.Quantity)
				}
				fmt.Fprintf(out, "dry run: %d customer(s), %d product(s) not written\n", len(catalog.Customers), len(catalog.Products))
				return nil
			}

			logger := slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), nil))
			stores, cleanup, err := open(cmd.Context(), dsn, logger)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := Seed(cmd.Context(), catalog, stores.Customers, stores.Products); err != nil {
				return err
			}
			logger.Info("catalog seeded",
				slog.Int("customers", len(catalog.Customers)),
				slog.Int("products", len(catalog.Products)))
			fmt.Fprintf(out, "seeded %d customer(s), %d product(s)\n", len(catalog.Customers), len(catalog.Products))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "fixtures.yaml", "Path to the YAML fixture file")
	cmd.Flags().StringVar(&dsn, "dsn", os.Getenv("POSTGRES_DSN"), "PostgreSQL connection string (defaults to $POSTGRES_DSN)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the parsed fixtures without writing them")
	return cmd
}

// OpenPostgresStores connects to dsn and migrates the schema before seeding.
func OpenPostgresStores(ctx context.Context, dsn string, logger *slog.Logger) (Stores, func(), error) {
	db, closeDB, err := platformpostgres.Open(ctx, dsn)
	if err != nil {
		return Stores{}, nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	if err := migrations.Run(db.WithContext(ctx)); err != nil {
		closeDB()
		return Stores{}, nil, fmt.Errorf("migrating schema: %w", err)
	}
	logger.Info("postgres connection established")
	return Stores{
		Customers: customerpostgres.NewRepository(db),
		Products:  productpostgres.NewRepository(db),
	}, closeDB, nil
}
