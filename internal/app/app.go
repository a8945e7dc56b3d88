package app

import (
	"context"
	"os"
	"strings"

	"go-ems/internal/messaging/kafka"
	"go-ems/internal/middleware"
	"go-ems/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const databaseName = "EmployeeManagementDB"

// BuildApp wires infrastructure and modules onto the router. The returned
// hook releases the shared clients and is run after graceful shutdown.
func BuildApp(router *gin.Engine) (func(context.Context), error) {
	mongoClient, err := connection.ConnectMongoWithRetry(os.Getenv("MONGO_URI"), 5)
	if err != nil {
		return nil, err
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	redisClient, err := connection.ConnectRedisWithRetry(redisAddr, 5)
	if err != nil {
		return nil, err
	}

	db := mongoClient.Database(databaseName)
	employeesCol := db.Collection("employees")
	salariesCol := db.Collection("salaries")

	// Uniqueness lives in the store, not just the pre-checks.
	if err := ensureIndexes(context.Background(), employeesCol, salariesCol); err != nil {
		return nil, err
	}

	var publisher kafka.Publisher
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		publisher = kafka.NewPublisher(strings.Split(brokers, ","))
		zap.L().Info("kafka publisher enabled", zap.String("brokers", brokers))
	}

	router.Use(middleware.RequestID())

	registerModules(router, moduleDeps{
		employees: employeesCol,
		salaries:  salariesCol,
		rdb:       redisClient,
		publisher: publisher,
		logger:    zap.L(),
	})

	cleanup := func(ctx context.Context) {
		if publisher != nil {
			if err := publisher.Close(); err != nil {
				zap.L().Error("kafka publisher close failed", zap.Error(err))
			}
		}
		if err := redisClient.Close(); err != nil {
			zap.L().Error("redis close failed", zap.Error(err))
		}
		if err := mongoClient.Disconnect(ctx); err != nil {
			zap.L().Error("mongo disconnect failed", zap.Error(err))
		}
	}

	return cleanup, nil
}
