package main

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/foodcart/config"
	"github.com/Gunvolt24/foodcart/internal/repo/postgres"
	"github.com/Gunvolt24/foodcart/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "foodctl",
		Short:         "Служебные команды сервиса foodcart",
		SilenceUsage: true,
	}

	root.AddCommand(
		newValidateOrdersCmd(),
		newGeocodeCmd(),
		newMigrateCmd(),
		newManagerCmd(),
	)
	return root
}

// env — общие зависимости команд, которым нужна БД.
type env struct {
	cfg     *config.Config
	log     *logger.ZapLogger
	pool    *pgxpool.Pool
	cleanup func()
}

func openEnv(ctx context.Context) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logg, closeLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
	if err != nil {
		_ = closeLogger()
		return nil, err
	}

	return &env{
		cfg:  cfg,
		log:  logg,
		pool: pool,
		cleanup: func() {
			pool.Close()
			_ = closeLogger()
		},
	}, nil
}
