package main

import (
	"context"
	"fmt"
	"time"

	"donation-service/src/internal/config"
	"donation-service/src/internal/repository"
	"donation-service/src/pkg/databases/rdbms"
	"donation-service/src/pkg/log"

	"github.com/urfave/cli/v2"
)

func startMigrate(cctx *cli.Context) error {
	viperConfig := config.NewViper()
	log.InitLogger(viperConfig)
	logger := log.GetLogger()

	db, err := rdbms.InitConnection(viperConfig, logger)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(cctx.Context, time.Minute)
	defer cancel()

	store := repository.NewSQLRewardRepository(db)
	if err := store.Migrate(ctx); err != nil {
		return err
	}
	logger.Info("migrate", "schema created", "startMigrate", viperConfig.GetString("database.driver"))

	if cctx.Bool("seed") {
		if err := store.LoadSeed(ctx, repository.DefaultSeed()); err != nil {
			return err
		}
		logger.Info("migrate", "seed data loaded", "startMigrate", "")
	}
	return nil
}
