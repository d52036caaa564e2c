package main

import (
	"log"

	"github.com/anandita-3217/flashdeck/internal/bot"
	"github.com/anandita-3217/flashdeck/internal/config"
	"github.com/anandita-3217/flashdeck/internal/service"
	"github.com/anandita-3217/flashdeck/internal/storage/cache"
	"github.com/anandita-3217/flashdeck/internal/storage/deck"

	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)

	store := deck.NewStore()
	sessions := cache.NewCache()
	services := service.InitServices(store, sessions, logger)

	if cfg.Deck.SeedFile != "" {
		res, err := services.ImportFile(cfg.Deck.SeedFile)
		if err != nil {
			logger.Fatal("failed to import seed deck", zap.String("path", cfg.Deck.SeedFile), zap.Error(err))
		}
		logger.Info("seed deck imported",
			zap.String("path", cfg.Deck.SeedFile),
			zap.Int("added", res.Added),
			zap.Int("skipped", res.Skipped))
	}

	handler, err := bot.NewTelegramAPI(cfg.BotToken, cfg.Env, services, sessions)
	if err != nil {
		logger.Fatal(err.Error())
		return
	}

	handler.Start()
}
