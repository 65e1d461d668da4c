package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"catalog_service/config"
	"catalog_service/internal/delivery"
	grpcHandler "catalog_service/internal/delivery/grpc"
	"catalog_service/internal/middleware"
	"catalog_service/internal/repository"
	"catalog_service/internal/usecase"
	"catalog_service/pkg/db"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
)

func main() {
	logger := setupLogger("info", "text")

	cfg, err := config.LoadConfig(logger)
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}
	logger = setupLogger(cfg.LogLevel, cfg.LogFormat)
	if logger.IsLevelEnabled(logrus.DebugLevel) {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	logger.Info("Starting Catalog Service...")

	// prices go out as JSON numbers; quoted strings are still accepted on input
	decimal.MarshalJSONWithoutQuotes = true

	// --- Database ---
	database, err := db.Open(cfg.DatabaseDriver, cfg.DatabaseURL, logger)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(database); err != nil {
			logger.Errorf("Error closing database connection: %v", err)
		} else {
			logger.Info("Database connection closed.")
		}
	}()

	if cfg.AutoMigrate {
		if err := db.Migrate(database); err != nil {
			logger.Fatalf("Failed to migrate schema: %v", err)
		}
		logger.Info("Schema migrated.")
	}
	if cfg.SeedData {
		if err := db.Seed(context.Background(), database, logger); err != nil {
			logger.Fatalf("Failed to seed database: %v", err)
		}
	}

	sqlDB, err := database.DB()
	if err != nil {
		logger.Fatalf("Failed to access connection pool: %v", err)
	}

	// --- Dependency Injection ---
	transactor := repository.NewTransactor(database, logger)
	categoryUseCase := usecase.NewCategoryUseCase(transactor, logger)
	productUseCase := usecase.NewProductUseCase(transactor, logger)
	logger.Info("Use cases initialized.")

	routerCfg := delivery.RouterConfig{
		Categories: categoryUseCase,
		Products:   productUseCase,
		DB:         sqlDB,
		Paging: delivery.PageDefaults{
			DefaultSize: cfg.DefaultPageSize,
			MaxSize:     cfg.MaxPageSize,
		},
		Logger: logger,
	}
	if cfg.OIDCIssuerURL != "" {
		verifier, err := middleware.NewOIDCVerifier(context.Background(), cfg.OIDCIssuerURL, cfg.OIDCClientID)
		if err != nil {
			logger.Fatalf("Failed to initialise OIDC verifier: %v", err)
		}
		routerCfg.Verifier = verifier
		logger.Info("Bearer auth enabled for mutating routes.")
	}
	router := delivery.NewRouter(routerCfg)

	httpServer := &http.Server{
		Addr:    cfg.HTTPPort,
		Handler: router,
	}
	go func() {
		logger.Infof("HTTP server listening on %s", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Failed to serve HTTP: %v", err)
		}
	}()

	// --- gRPC health ---
	lis, err := net.Listen("tcp", cfg.GrpcPort)
	if err != nil {
		logger.Fatalf("Failed to listen on port %s: %v", cfg.GrpcPort, err)
	}
	grpcServer := grpcHandler.NewServer(grpcHandler.NewHealthHandler(sqlDB, logger), logger)
	go func() {
		logger.Infof("gRPC server listening on %s", cfg.GrpcPort)
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			logger.Fatalf("Failed to serve gRPC: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Warn("Shutdown signal received...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Errorf("HTTP server forced to shut down: %v", err)
	} else {
		logger.Info("HTTP server gracefully stopped.")
	}
	grpcServer.GracefulStop()
	logger.Info("gRPC server gracefully stopped.")
	logger.Info("Catalog Service shut down gracefully.")
}

func setupLogger(level, format string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	if format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logger.Warnf("Invalid log level '%s', using default 'info'. Error: %v", level, err)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)
	return logger
}
