package connection

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const DefaultMongoURI = "mongodb://localhost:27017/"

// ConnectMongoWithRetry opens one client for the process lifetime and pings
// before handing it out, so a bad password fails at startup, not mid-request.
func ConnectMongoWithRetry(uri string, maxRetries int) (*mongo.Client, error) {
	if uri == "" {
		zap.L().Warn("MONGO_URI not set, falling back to localhost")
		uri = DefaultMongoURI
	}

	var lastErr error

	for i := 1; i <= maxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)

		client, err := mongo.Connect(ctx, options.Client().
			ApplyURI(uri).
			SetServerSelectionTimeout(5*time.Second))
		if err != nil {
			cancel()
			lastErr = err
			zap.L().Warn("mongo connect failed",
				zap.Int("attempt", i),
				zap.Int("max_retries", maxRetries),
				zap.Error(err),
			)
			time.Sleep(5 * time.Second)
			continue
		}

		if err := client.Ping(ctx, nil); err != nil {
			cancel()
			lastErr = err
			zap.L().Warn("mongo ping failed",
				zap.Int("attempt", i),
				zap.Int("max_retries", maxRetries),
				zap.Error(err),
			)
			_ = client.Disconnect(context.Background())
			time.Sleep(5 * time.Second)
			continue
		}

		cancel()
		zap.L().Info("mongo connected")
		return client, nil
	}

	return nil, fmt.Errorf("mongo connection failed after %d retries: %w", maxRetries, lastErr)
}

func ConnectRedisWithRetry(addr string, maxRetries int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	for i := 1; i <= maxRetries; i++ {
		ctx := context.Background()
		if err := rdb.Ping(ctx).Err(); err == nil {
			zap.L().Info("redis connected")
			return rdb, nil
		}

		zap.L().Warn("redis retry failed",
			zap.Int("attempt", i),
			zap.Int("max_retries", maxRetries),
		)
		time.Sleep(5 * time.Second)
	}

	return nil, fmt.Errorf("failed to connect redis")
}
