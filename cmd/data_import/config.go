package main

import (
	"log/slog"
	"os"

	"github.com/veslaw/casefolio/internal/storage/factory"
	"github.com/veslaw/casefolio/pkg/config/env"
)

type DataImportConfig struct {
	StorageConfig factory.StorageConfig
	SeedPath      string
}

func LoadConfig() (*DataImportConfig, error) {
	if err := env.LoadDotEnv(os.Getenv("ENV"), "cmd/data_import/.env"); err != nil {
		slog.Info("Skipping .env ...", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		return nil, err
	}

	seedPath := os.Getenv("SEED_PATH")
	if seedPath == "" {
		seedPath = "cmd/data_import/seed.yaml"
	}

	return &DataImportConfig{
		StorageConfig: *storageCfg,
		SeedPath:      seedPath,
	}, nil
}
