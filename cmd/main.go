package main

import (
	"context"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/mkobayashi/account-service/config"
	"github.com/mkobayashi/account-service/db"
	"github.com/mkobayashi/account-service/internal/account/handler"
	repo "github.com/mkobayashi/account-service/internal/account/repository/postgres"
	"github.com/mkobayashi/account-service/internal/account/service"
	"github.com/mkobayashi/account-service/internal/middleware"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg := config.Load()
	ctx := context.Background()

	pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("database connection failed")
	}
	defer pool.Close()

	if err := db.Migrate(ctx, cfg.DBURL); err != nil {
		logger.Fatal().Err(err).Msg("migrations failed")
	}

	store := repo.NewRepository(pool)
	tokenService := service.NewTokenService(cfg.TokenSecret, cfg.TokenValiditySec)
	accountService := service.NewAccountService(store, tokenService)
	accountHandler := handler.NewAccountHandler(accountService)

	app := fiber.New()
	app.Use(middleware.RequestLogger(logger))
	handler.RegisterRoutes(app, accountHandler)

	logger.Info().Str("env", cfg.Env).Str("port", cfg.Port).Msg("server listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
