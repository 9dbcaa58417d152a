package main

import (
	"fmt"
	"os"

	"github.com/veslaw/casefolio/internal/storage/factory"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type CasefolioConfig struct {
	StorageConfig factory.StorageConfig
	AdminPasscode string
}

func (ac *AppConfig) Load() (*CasefolioConfig, error) {
	storageCfg, err := factory.LoadEnv()
	if err != nil {
		return nil, err
	}

	// The passcode must come from the environment. A hard-coded default
	// would put the old client-side cleartext constant back in the source.
	passcode := os.Getenv("ADMIN_PASSCODE")
	if passcode == "" {
		return nil, fmt.Errorf("ADMIN_PASSCODE environment variable is not set")
	}

	return &CasefolioConfig{
		StorageConfig: *storageCfg,
		AdminPasscode: passcode,
	}, nil
}
