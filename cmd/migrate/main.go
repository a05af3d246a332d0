package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"sakura-community/pkg/config"
	"sakura-community/pkg/database"
	"sakura-community/pkg/logger"
	"sakura-community/pkg/models"

	"gorm.io/gorm"
)

func main() {
	command := flag.String("command", "up", "migration command (up, status)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.NewWithLevel(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	dialector, err := database.Dialector(cfg)
	if err != nil {
		log.Error("Failed to pick database driver: %v", err)
		panic(err)
	}

	db, err := database.Open(dialector, cfg.LogLevel)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}
	defer func() { _ = database.Close(db) }()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := run(ctx, db, *command, log); err != nil {
		log.Error("Migration %s failed: %v", *command, err)
		panic(err)
	}
}

func run(ctx context.Context, db *gorm.DB, command string, log *logger.Logger) error {
	db = db.WithContext(ctx)

	switch command {
	case "up":
		if err := database.Migrate(db); err != nil {
			return err
		}
		log.Info("Schema is up to date")
		return nil
	case "status":
		for _, model := range models.All() {
			stmt := &gorm.Statement{DB: db}
			if err := stmt.Parse(model); err != nil {
				return fmt.Errorf("parse model: %w", err)
			}
			table := stmt.Schema.Table

			if !db.Migrator().HasTable(model) {
				log.Info("%-10s missing", table)
				continue
			}
			var rows int64
			if err := db.Model(model).Count(&rows).Error; err != nil {
				return fmt.Errorf("count %s: %w", table, err)
			}
			log.Info("%-10s %d rows", table, rows)
		}
		return nil
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}
