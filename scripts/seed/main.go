package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/studentorg/internal/config"
	"github.com/studentorg/internal/db"
	"github.com/studentorg/internal/logger"
)

func main() {
	cfg := config.Load()

	var (
		dbPath   string
		dbURL    string
		username string
		password string
		samples  bool
	)
	flag.StringVar(&dbPath, "db", cfg.DatabasePath, "sqlite db path")
	flag.StringVar(&dbURL, "database-url", cfg.DatabaseURL, "postgres connection string, overrides -db")
	flag.StringVar(&username, "admin-user", cfg.SuperRootUserName, "admin account to create when missing")
	flag.StringVar(&password, "admin-password", cfg.SuperRootPassword, "password for -admin-user")
	flag.BoolVar(&samples, "samples", true, "also create sample events and news")
	flag.Parse()

	log := logger.Init(logger.Config{Level: cfg.LogLevel, Environment: cfg.AppEnv, ServiceName: "studentorg-seed"})

	if err := db.Init(db.Options{URL: dbURL, Path: dbPath}); err != nil {
		fmt.Fprintf(os.Stderr, "init db: %v\n", err)
		os.Exit(1)
	}

	if _, err := db.EnsureUser(db.DB, username, password); err != nil {
		fmt.Fprintf(os.Stderr, "ensure admin user: %v\n", err)
		os.Exit(1)
	}

	summary, err := seed(db.DB, samples)
	if err != nil {
		log.Error("seeding failed", err)
		os.Exit(1)
	}

	for _, line := range summary.lines() {
		fmt.Println(line)
	}
}
