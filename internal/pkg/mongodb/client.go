package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"parcelmarket/internal/pkg/config"
	"parcelmarket/pkg/logger"
	retrierconfig "parcelmarket/pkg/retrier"
	"parcelmarket/pkg/retrier/backoff_adapter"
)

const (
	maxPoolSize    = uint64(10)
	minPoolSize    = uint64(5)
	connectTimeout = 10 * time.Second

	initialInterval = 5 * time.Second
	maxInterval     = 30 * time.Second
	maxElapsedTime  = 2 * time.Minute
	randomization   = 0.5
	multiplier      = 2
)

func NewClient(ctx context.Context, log logger.Logger, cfg *config.Database) (*mongo.Client, error) {
	clientOpts := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(maxPoolSize).
		SetMinPoolSize(minPoolSize).
		SetConnectTimeout(connectTimeout)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("mongo client: %w", err)
	}

	dbLog := log.With(
		logger.NewField("db", cfg.Name),
	)

	err = pingDatabase(ctx, dbLog, client)
	if err != nil {
		if disconnectErr := client.Disconnect(ctx); disconnectErr != nil {
			return nil, fmt.Errorf("database connection: %w (failed to disconnect: %w)", err, disconnectErr)
		}
		return nil, fmt.Errorf("database connection: %w", err)
	}

	return client, nil
}

func pingDatabase(ctx context.Context, log logger.Logger, client *mongo.Client) error {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     nil, // retry every error
	}

	retrier := backoff_adapter.New(retryConfig)

	var attempt uint64
	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		log.With(
			logger.NewField("attempt", attempt),
		).Info("attempting Database connection")

		return client.Ping(ctx, readpref.Primary())
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("Database connection failed after retries")
		return fmt.Errorf("failed to ping database: %w", err)
	}

	log.With(
		logger.NewField("attempts", attempt),
	).Info("Database connection established")
	return nil
}
