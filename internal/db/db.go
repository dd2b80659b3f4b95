package db

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the process wide database handle.
var DB *gorm.DB

// Options selects the storage backend. A non-empty URL picks PostgreSQL,
// otherwise Path is opened as a SQLite file.
type Options struct {
	URL      string
	Path     string
	LogLevel logger.LogLevel
}

// Models lists every table managed by auto-migration.
func Models() []interface{} {
	return []interface{}{
		&User{},
		&Event{},
		&NewsArticle{},
		&ContactMessage{},
		&NewsletterSubscriber{},
		&EventRegistration{},
		&BloodDonation{},
		&SiteSettings{},
		&HeroSection{},
		&AboutSection{},
		&Service{},
		&TeamMember{},
		&Testimonial{},
		&Gallery{},
		&FAQ{},
	}
}

// Init opens the database and runs auto-migration.
func Init(opts Options) error {
	gdb, err := Open(opts)
	if err != nil {
		return err
	}
	if err := Migrate(gdb); err != nil {
		return err
	}
	DB = gdb
	return nil
}

// Open connects to the configured backend without migrating.
func Open(opts Options) (*gorm.DB, error) {
	level := opts.LogLevel
	if level == 0 {
		level = logger.Warn
	}
	cfg := &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
	}

	if url := strings.TrimSpace(opts.URL); url != "" {
		return gorm.Open(postgres.Open(url), cfg)
	}

	path := strings.TrimSpace(opts.Path)
	if path == "" {
		path = "studentorg.db"
	}
	if err := ensureParentDir(path); err != nil {
		return nil, err
	}
	return gorm.Open(sqlite.Open(path), cfg)
}

// Migrate creates or updates all tables.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(Models()...)
}

// BackendInfo describes the storage engine for diagnostics.
type BackendInfo struct {
	Type   string
	Engine string
}

// DescribeBackend reports which driver gdb runs on.
func DescribeBackend(gdb *gorm.DB) BackendInfo {
	if gdb == nil || gdb.Dialector == nil {
		return BackendInfo{Type: "Unknown", Engine: "none"}
	}
	switch name := gdb.Dialector.Name(); name {
	case "sqlite":
		return BackendInfo{Type: "SQLite", Engine: "gorm.io/driver/sqlite"}
	case "postgres":
		return BackendInfo{Type: "PostgreSQL", Engine: "gorm.io/driver/postgres"}
	default:
		return BackendInfo{Type: "Unknown", Engine: name}
	}
}

func ensureParentDir(path string) error {
	if strings.HasPrefix(path, "file:") {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}
