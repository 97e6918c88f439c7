package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/DanRulev/vokabot/internal/bot"
	"github.com/DanRulev/vokabot/internal/client"
	"github.com/DanRulev/vokabot/internal/config"
	"github.com/DanRulev/vokabot/internal/health"
	"github.com/DanRulev/vokabot/internal/repository"
	"github.com/DanRulev/vokabot/internal/service"
	"github.com/DanRulev/vokabot/internal/storage/cache"
	"github.com/DanRulev/vokabot/internal/storage/db"

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
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := db.InitDB(cfg.DB)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}
	defer conn.Close()

	if err := db.Migrate(ctx, conn.DB, cfg.DB.Driver); err != nil {
		logger.Fatal("failed migrate db", zap.Error(err))
	}

	repos := repository.NewRepository(conn, cfg.DB.Driver)

	translator, err := client.InitTranslator(cfg.Translator)
	if err != nil {
		logger.Fatal("failed init translator", zap.Error(err))
	}

	sessions := cache.NewCache()
	services := service.InitServices(translator, repos, sessions, cfg.App, logger)

	if cfg.HTTP.Addr != "" {
		go func() {
			if err := health.Serve(ctx, cfg.HTTP.Addr, conn, logger); err != nil {
				logger.Error("health endpoint stopped", zap.Error(err))
			}
		}()
	}

	handler, err := bot.NewTelegramAPI(cfg.BotToken, cfg.Env, cfg.App.PollTimeout, services, logger)
	if err != nil {
		logger.Fatal("failed init telegram bot", zap.Error(err))
	}

	logger.Info("bot started", zap.String("db_driver", cfg.DB.Driver), zap.String("translator", cfg.Translator.Provider))

	handler.Start(ctx)

	logger.Info("bot stopped", zap.Int("open_sessions", sessions.Len()))
}
