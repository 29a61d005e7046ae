package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Madhav-Gupta-28/bazar-backend-go/config"
	"github.com/Madhav-Gupta-28/bazar-backend-go/database"
	"github.com/Madhav-Gupta-28/bazar-backend-go/logger"
	"github.com/Madhav-Gupta-28/bazar-backend-go/routes"
	"github.com/Madhav-Gupta-28/bazar-backend-go/utils"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load environment variables
	config.LoadEnv()
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.AppEnv)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	// Connect to MongoDB
	client, err := database.ConnectDB(cfg.MongoURI, cfg.DatabaseName)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer client.Disconnect(context.Background())
	log.Info().Str("database", cfg.DatabaseName).Msg("connected to MongoDB")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureIndexes(ctx, database.DB); err != nil {
		// Stores with legacy duplicate invoices cannot take the unique index.
		log.Warn().Err(err).Msg("index setup incomplete")
	}

	counter := database.NewInvoiceCounter(database.DB)
	orders := database.NewOrderRepository(database.DB, counter)
	last, err := orders.LastInvoice(ctx)
	if err == nil {
		err = counter.Seed(ctx, last)
	}
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialise invoice counter")
	}

	encryptor := utils.NewEncryptor(cfg.EncryptPassword)
	if !encryptor.Enabled() {
		log.Warn().Msg("ENCRYPT_PASSWORD not set, settings payloads are returned unencrypted")
	}

	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(logger.Inject(log))
	e.Use(logger.RequestLogger(log))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	routes.SetupRoutes(e, routes.Dependencies{
		Tokens:    utils.NewTokenSigner(cfg.JWTSecret, cfg.JWTVerifySecret),
		Admins:    database.NewAdminRepository(database.DB),
		Orders:    orders,
		Settings:  database.NewSettingRepository(database.DB),
		Encryptor: encryptor,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
