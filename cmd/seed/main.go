package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"sakura-community/pkg/config"
	"sakura-community/pkg/database"
	"sakura-community/pkg/logger"
	"sakura-community/pkg/password"
)

func main() {
	demo := flag.Bool("demo", false, "also create demo users, posts, comments and likes")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.NewWithLevel(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	db, err := database.New(cfg, log)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}
	defer func() { _ = database.Close(db) }()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	s := &seeder{
		db:     db.WithContext(ctx),
		hasher: password.NewHasher(cfg.BcryptCost),
		log:    log,
	}

	if err := s.seedAdmin(cfg); err != nil {
		log.Error("Failed to seed administrator: %v", err)
		panic(err)
	}

	if *demo {
		if err := s.seedDemo(); err != nil {
			log.Error("Failed to seed demo content: %v", err)
			panic(err)
		}
	}

	log.Info("Database seeded successfully!")
}
