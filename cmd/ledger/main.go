package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	redislib "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	postgresRepo "github.com/iho/acctledger/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/acctledger/internal/adapter/repository/redis"
	"github.com/iho/acctledger/internal/infrastructure/config"
	"github.com/iho/acctledger/internal/infrastructure/logger"
	"github.com/iho/acctledger/internal/infrastructure/metrics"
	"github.com/iho/acctledger/internal/infrastructure/postgres"
	"github.com/iho/acctledger/internal/infrastructure/redis"
	"github.com/iho/acctledger/internal/usecase"
)

var (
	entityID string
	asOfFlag string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ledger",
		Short: "Accounting ledger tool",
		Long:  `A command line interface for operating the double-entry accounting ledger.`,
	}

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(verifyCmd())
	rootCmd.AddCommand(trialBalanceCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			return postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, log)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the last migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			return postgres.RunMigrationsDown(cfg.DatabaseURL, cfg.MigrationsPath, log)
		},
	})

	return cmd
}

func verifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check ledger consistency for an entity",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer app.Close()

			report, err := app.reconciliation.CheckEntityConsistency(ctx, entityID)
			if err != nil {
				return err
			}

			printJSON(report)

			if !report.Consistent {
				return fmt.Errorf("ledger for entity %s is inconsistent", entityID)
			}
			fmt.Println("Consistency check PASSED")
			return nil
		},
	}

	cmd.Flags().StringVar(&entityID, "entity", "", "Entity ID to verify")
	cmd.MarkFlagRequired("entity")

	return cmd
}

func trialBalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trial-balance",
		Short: "Print per-account debit/credit totals for an entity",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			asOf, err := parseAsOf(asOfFlag)
			if err != nil {
				return err
			}

			app, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer app.Close()

			rows, err := app.reconciliation.TrialBalance(ctx, entityID, asOf)
			if err != nil {
				return err
			}

			printJSON(rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&entityID, "entity", "", "Entity ID")
	cmd.Flags().StringVar(&asOfFlag, "as-of", "", "As-of date (YYYY-MM-DD, default now)")
	cmd.MarkFlagRequired("entity")

	return cmd
}

// app wires repositories and use cases over live connections.
type app struct {
	pool           *pgxpool.Pool
	redisClient    *redislib.Client
	posting        *usecase.PostingUseCase
	balances       *usecase.BalanceUseCase
	assignments    *usecase.AssignmentUseCase
	recycling      *usecase.RecyclingUseCase
	reconciliation *usecase.ReconciliationUseCase
}

func newApp(ctx context.Context) (*app, error) {
	cfg, log, err := loadConfig()
	if err != nil {
		return nil, err
	}

	connectCtx, cancel := context.WithTimeout(ctx, cfg.DatabaseTimeout)
	defer cancel()

	pool, err := postgres.NewPool(connectCtx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	redisClient, err := redis.NewClient(connectCtx, cfg.RedisURL)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	m := metrics.New(prometheus.NewRegistry())

	txManager := postgresRepo.NewTxManager(pool)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	transactionRepo := postgresRepo.NewTransactionRepository(pool)
	entryRepo := postgresRepo.NewEntryRepository(pool)
	assignmentRepo := postgresRepo.NewAssignmentRepository(pool)
	periodRepo := postgresRepo.NewPeriodRepository(pool)
	taxRepo := postgresRepo.NewTaxRepository(pool)
	idGen := postgresRepo.NewULIDGenerator()
	cache := redisRepo.NewBalanceCache(redisClient)
	retrier := postgresRepo.NewRetrier(log)

	posting := usecase.NewPostingUseCase(txManager, accountRepo, transactionRepo, entryRepo, periodRepo, taxRepo, idGen, cache, log, m).
		WithRetrier(retrier)
	balances := usecase.NewBalanceUseCase(accountRepo, transactionRepo, entryRepo, assignmentRepo, cache, log, m)
	assignments := usecase.NewAssignmentUseCase(txManager, transactionRepo, entryRepo, assignmentRepo, idGen, log, m).
		WithRetrier(retrier)
	recycling := usecase.NewRecyclingUseCase(posting, txManager, transactionRepo, entryRepo, assignmentRepo, periodRepo, idGen, log, m)
	reconciliation := usecase.NewReconciliationUseCase(entryRepo, log, m)

	return &app{
		pool:           pool,
		redisClient:    redisClient,
		posting:        posting,
		balances:       balances,
		assignments:    assignments,
		recycling:      recycling,
		reconciliation: reconciliation,
	}, nil
}

func (a *app) Close() {
	a.redisClient.Close()
	a.pool.Close()
}

func loadConfig() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	return cfg, log, nil
}

func parseAsOf(value string) (time.Time, error) {
	if value == "" {
		return time.Now().UTC(), nil
	}

	asOf, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid as-of date %q: %w", value, err)
	}

	return asOf, nil
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Failed to encode output: %v\n", err)
		return
	}
	fmt.Println(string(data))
}
