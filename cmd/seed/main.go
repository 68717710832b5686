package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/workhoops/workhoops-api/internal/adapter/repository"
	"github.com/workhoops/workhoops-api/internal/config"
	"github.com/workhoops/workhoops-api/internal/infrastructure/database"
	"github.com/workhoops/workhoops-api/internal/seed"
	"go.uber.org/zap"
)

func main() {
	var fixturesPath string
	flag.StringVar(&fixturesPath, "f", "", "Path to a fixtures YAML file (defaults to the embedded dataset)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	log := cfg.Logger
	defer log.Sync()

	var fixtures *seed.Fixtures
	if fixturesPath != "" {
		fixtures, err = seed.LoadFixtures(fixturesPath)
	} else {
		fixtures, err = seed.DefaultFixtures()
	}
	if err != nil {
		log.Fatal("Failed to load fixtures", zap.Error(err))
	}

	ctx := context.Background()

	client, err := database.NewConnection(ctx, cfg.MongoDB, log)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := database.Close(context.Background(), client, log); err != nil {
			log.Error("Failed to close MongoDB", zap.Error(err))
		}
	}()

	db := client.Database(cfg.MongoDB.Database)
	repos := repository.InitRepositories(db)

	loader := seed.NewLoader(seed.NewMongoClearer(db), repos, log)
	summary, err := loader.Load(ctx, fixtures, time.Now())
	if err != nil {
		log.Fatal("Seeding failed", zap.Error(err), zap.Any("inserted", summary))
	}

	log.Info("Database seeded", zap.Any("inserted", summary))
}
