package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"donation-service/src/internal/config"
	"donation-service/src/internal/search"
	"donation-service/src/pkg/log"

	"github.com/urfave/cli/v2"
)

func startServer(*cli.Context) error {
	viperConfig := config.NewViper()
	log.InitLogger(viperConfig)
	logger := log.GetLogger()
	config.NewKafkaConfig(viperConfig)
	config.LoadRedisConfig(viperConfig)
	db := config.NewDatabase(viperConfig, logger)
	redisClient := config.NewRedis(viperConfig, logger)
	producer := config.NewKafkaProducer(viperConfig, logger)
	validate := config.NewValidator(viperConfig)
	app := config.NewFiber(viperConfig)
	index := search.NewIndex(logger)

	err := config.Bootstrap(&config.BootstrapConfig{
		DB:       db,
		App:      app,
		Log:      logger,
		Validate: validate,
		Config:   viperConfig,
		Producer: producer,
		Redis:    redisClient,
		Index:    index,
	})
	if err != nil {
		return err
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		<-quit
		logger.Info("main", "Server donation-service is shutting down...", "gracefull", "")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := app.ShutdownWithContext(ctx); err != nil {
			logger.Error("main", fmt.Sprintf("Error during shutdown: %v", err), "graceful", "")
		}
		if err := producer.Close(); err != nil {
			logger.Error("main", fmt.Sprintf("Error closing producer: %v", err), "graceful", "")
		}
		if redisClient != nil {
			if err := redisClient.Close(); err != nil {
				logger.Error("main", fmt.Sprintf("Error closing redis: %v", err), "graceful", "")
			}
		}
		if db != nil {
			if err := db.Close(); err != nil {
				logger.Error("main", fmt.Sprintf("Error closing database: %v", err), "graceful", "")
			}
		}
		index.Close()
		close(done)
	}()

	webPort := viperConfig.GetInt("web.port")
	if err := app.Listen(fmt.Sprintf(":%d", webPort)); err != nil {
		logger.Error("main", fmt.Sprintf("Failed to start server: %v", err), "main", "")
		return err
	}

	<-done
	logger.Info("main", fmt.Sprintf("Server %s stopped", viperConfig.GetString("app.name")), "gracefull", "")
	return nil
}
