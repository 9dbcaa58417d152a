package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/veslaw/casefolio/internal/richtext"
	"github.com/veslaw/casefolio/internal/search"
	"github.com/veslaw/casefolio/internal/seed"
	"github.com/veslaw/casefolio/internal/storage/factory"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	stores, err := factory.NewStores(ctx, cfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to create stores", "error", err)
		os.Exit(1)
	}
	defer stores.Close()

	f, err := os.Open(cfg.SeedPath)
	if err != nil {
		slog.Error("Failed to open seed file", "path", cfg.SeedPath, "error", err)
		os.Exit(1)
	}
	defer f.Close()

	fixtures, err := seed.NewLoader(f).Load(true)
	if err != nil {
		slog.Error("Failed to load seed file", "path", cfg.SeedPath, "error", err)
		os.Exit(1)
	}

	sanitizer := richtext.NewSanitizer()

	for _, fixture := range fixtures.Cases {
		doc := fixture.ToDomain()
		sanitizer.CleanCase(&doc)
		doc.Timeline = search.SortTimeline(doc.Timeline)

		id, err := stores.Cases.Create(ctx, doc)
		if err != nil {
			slog.Error("Failed to import case", "title", doc.Title, "error", err)
			os.Exit(1)
		}
		slog.Info("Imported case", "id", id, "title", doc.Title)
	}

	for _, fixture := range fixtures.Articles {
		doc := fixture.ToDomain()
		sanitizer.CleanArticle(&doc)

		id, err := stores.Articles.Create(ctx, doc)
		if err != nil {
			slog.Error("Failed to import article", "title", doc.Title, "error", err)
			os.Exit(1)
		}
		slog.Info("Imported article", "id", id, "title", doc.Title)
	}

	slog.Info("Seed import finished",
		"cases", len(fixtures.Cases),
		"articles", len(fixtures.Articles))
}
