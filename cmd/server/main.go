package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/studentorg/internal/config"
	"github.com/studentorg/internal/db"
	"github.com/studentorg/internal/handler"
	"github.com/studentorg/internal/logger"
	"github.com/studentorg/internal/mailer"
	"github.com/studentorg/internal/router"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Config{Level: cfg.LogLevel, Environment: cfg.AppEnv})
	gin.SetMode(cfg.GinMode)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", err, logger.String("env", cfg.AppEnv))
		os.Exit(1)
	}

	if err := db.Init(db.Options{URL: cfg.DatabaseURL, Path: cfg.DatabasePath}); err != nil {
		log.Error("failed to initialize database", err)
		os.Exit(1)
	}
	backend := db.DescribeBackend(db.DB)
	log.Info("database ready", logger.String("type", backend.Type), logger.String("platform", cfg.Platform))

	created, err := db.EnsureUser(db.DB, cfg.SuperRootUserName, cfg.SuperRootPassword)
	if err != nil {
		log.Error("failed to ensure admin user", err)
		os.Exit(1)
	}
	if created {
		log.Info("admin user created", logger.String("username", cfg.SuperRootUserName))
	}

	sender, err := mailer.New(context.Background(), cfg.Mail, log)
	if err != nil {
		log.Error("failed to configure mail provider", err, logger.String("provider", cfg.Mail.Provider))
		os.Exit(1)
	}

	api := handler.NewAPI(db.DB, handler.Options{
		Production: cfg.IsProduction(),
		Platform:   cfg.Platform,
		Logger:     log,
		Mailer:     sender,
		Composer: mailer.Composer{
			From:         cfg.Mail.From,
			ContactEmail: cfg.Mail.ContactEmail,
		},
		MailTimeout: cfg.Mail.Timeout,
	})

	r := router.SetupRouter(api, cfg.SessionSecret, log)
	log.Info("starting server", logger.String("addr", cfg.ListenAddr))
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Error("failed to run server", err)
		os.Exit(1)
	}
}
