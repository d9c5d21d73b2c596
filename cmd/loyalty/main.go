package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/unistep/loyalty-backend/internal/pkg/config"
	"github.com/unistep/loyalty-backend/internal/pkg/database"
	"github.com/unistep/loyalty-backend/internal/pkg/health"
	"github.com/unistep/loyalty-backend/internal/pkg/logger"
	"github.com/unistep/loyalty-backend/internal/pkg/middleware"
	"github.com/unistep/loyalty-backend/internal/pkg/server"
	"github.com/unistep/loyalty-backend/internal/utils"
	"github.com/unistep/loyalty-backend/services/loyalty/gateway"
	"github.com/unistep/loyalty-backend/services/loyalty/handler"
	"github.com/unistep/loyalty-backend/services/loyalty/repository"
	"github.com/unistep/loyalty-backend/services/loyalty/usecase"
)

func main() {
	appName := "loyalty-backend"
	configs := config.InitConfig(".env")

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis connection for OTP challenges
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize repository, gateways, usecase, and handler
	userRepo := repository.NewUserRepo(configs, postgresClient.GetDB(), redisClient)
	apexGW := gateway.NewApexClient(configs)
	smsGW := gateway.NewGoSMSClient(configs)
	userUC := usecase.NewUserUC(userRepo, userRepo, apexGW, smsGW, configs)
	userHandler := handler.NewUserHandler(userUC)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Validator = utils.NewRequestValidator()
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware())
	e.Use(logger.EchoMiddleware(zapLogger))

	userHandler.RegisterRoutes(e, configs.APIKey)
	health.RegisterHealthEndpoints(e, appName, map[string]health.HealthChecker{
		"postgres": health.NewPostgresHealthChecker(postgresClient),
		"redis":    health.NewRedisHealthChecker(redisClient),
	})

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server exited with error", logger.Err(err))
	}
}
