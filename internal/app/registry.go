package app

import (
	"go-ems/internal/employee"
	"go-ems/internal/messaging/kafka"
	"go-ems/internal/payroll"
	"go-ems/internal/report"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type moduleDeps struct {
	employees *mongo.Collection
	salaries  *mongo.Collection
	rdb       *redis.Client
	publisher kafka.Publisher
	logger    *zap.Logger
}

func registerModules(router *gin.Engine, deps moduleDeps) {
	api := router.Group("/api/v1")

	employeeRepo := employee.NewRepository(deps.employees)
	employeeService := employee.NewService(employeeRepo, deps.rdb)
	employee.RegisterRoutes(api, employee.NewHandler(employeeService), deps.logger)

	payrollRepo := payroll.NewRepository(deps.salaries, deps.employees)
	payrollService := payroll.NewServiceWithPublisher(payrollRepo, deps.publisher)
	payroll.RegisterRoutes(api, payroll.NewHandler(payrollService, deps.rdb), deps.rdb, deps.logger)

	report.RegisterRoutes(api, report.NewHandler(payrollService), deps.logger)
}
