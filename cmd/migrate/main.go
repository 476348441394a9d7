package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/quillworks/quill/internal/db"
	"github.com/quillworks/quill/internal/models"
	"github.com/quillworks/quill/pkg/config"
	"github.com/quillworks/quill/pkg/logging"
)

func main() {
	seed := flag.Bool("seed", false, "insert demo data after migrating")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logging.InitLogger(&cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logging.GetLogger().Sync()

	logger := logging.GetLogger()
	logger.Info("Running schema migration")

	database, err := db.New(&cfg.Database, cfg.Logging.Level)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	if err := database.Migrate(); err != nil {
		logger.Fatal("Migration failed", zap.Error(err))
	}
	logger.Info("Migration complete")

	if *seed {
		if err := seedDemoData(database); err != nil {
			logger.Fatal("Seeding failed", zap.Error(err))
		}
		logger.Info("Demo data seeded")
	}
}

// seedDemoData inserts a demo author, group and post so a fresh
// install has something to render.
func seedDemoData(database *db.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repo := db.NewRepository(database.DB)
	users := db.NewUserRepository(repo)
	groups := db.NewGroupRepository(repo)
	posts := db.NewPostRepository(repo)

	demo, err := users.GetByUsername(ctx, "demo")
	if err != nil {
		return err
	}
	if demo != nil {
		// Already seeded
		return nil
	}

	demo = &models.User{Username: "demo"}
	if err := users.Create(ctx, demo); err != nil {
		return err
	}

	group := &models.Group{
		Title:       "General",
		Slug:        "general",
		Description: "Anything goes.",
	}
	if err := groups.Create(ctx, group); err != nil {
		return err
	}

	post := &models.Post{
		Text:     "Welcome to Quill.",
		AuthorID: demo.ID,
	}
	return posts.Create(ctx, post)
}
