// Command provision creates the quote storage for the configured backend and
// seeds the quote form options.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"arborlove_quote/internal/adapter/persistence/repository"
	"arborlove_quote/internal/domain/entities"
	"arborlove_quote/internal/infrastructure/config"
	"arborlove_quote/internal/infrastructure/database"
	"arborlove_quote/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

func main() {
	skipSeed := flag.Bool("skip-seed", false, "create storage without seeding quote options")
	wait := flag.Duration("wait", 2*time.Minute, "how long to wait for DynamoDB tables to become active")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = log.Sync() }()

	if err := run(context.Background(), cfg, *skipSeed, *wait, log); err != nil {
		log.Error("provisioning failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, skipSeed bool, wait time.Duration, log *zap.Logger) error {
	var seed func(context.Context, entities.QuoteOptions) (int, error)

	switch cfg.StorageBackend {
	case config.BackendPostgres:
		db, err := database.ConnectPostgres(ctx, cfg.Postgres.DSN)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := database.Migrate(ctx, db); err != nil {
			return err
		}
		seed = repository.NewQuoteOptionsPostgresRepository(db).SeedOptions
	default:
		awsCfg, err := database.NewAWSConfig(ctx, database.AWSOptions{
			Region:          cfg.AWS.Region,
			AccessKeyID:     cfg.AWS.AccessKeyID,
			SecretAccessKey: cfg.AWS.SecretAccessKey,
		})
		if err != nil {
			return err
		}
		ddb := database.ConnectDynamoDB(awsCfg, cfg.AWS.DynamoDBEndpoint)
		if err := database.EnsureTable(ctx, ddb, database.QuotesTableInput(cfg.AWS.QuotesTable), wait, log); err != nil {
			return err
		}
		if err := database.EnsureTable(ctx, ddb, database.QuoteOptionsTableInput(cfg.AWS.OptionsTable), wait, log); err != nil {
			return err
		}
		seed = repository.NewQuoteOptionsDynamoRepository(ddb, cfg.AWS.OptionsTable).SeedOptions
	}

	if skipSeed {
		log.Info("storage ready, seeding skipped", zap.String("backend", cfg.StorageBackend))
		return nil
	}
	n, err := seed(ctx, entities.DefaultQuoteOptions())
	if err != nil {
		return fmt.Errorf("seed quote options: %w", err)
	}
	log.Info("quote options seeded", zap.String("backend", cfg.StorageBackend), zap.Int("values", n))
	return nil
}
