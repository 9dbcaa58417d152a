// Package main Casefolio API
// @title Casefolio API
// @version 1.0
// @description Publishing backend for legal case summaries and editorial articles
// @BasePath /
package main

import (
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"

	_ "github.com/veslaw/casefolio/docs"
	"github.com/veslaw/casefolio/internal/auth"
	"github.com/veslaw/casefolio/internal/router"
	"github.com/veslaw/casefolio/internal/server"
	"github.com/veslaw/casefolio/internal/storage/factory"
	"github.com/veslaw/casefolio/internal/storage/pg"
	pkgserver "github.com/veslaw/casefolio/pkg/server"
)

func main() {
	sCfg, err := server.LoadConfig("cmd/casefolio_api/.env")
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
		return
	}

	s := server.New(sCfg, pkgserver.NewOkHealthChecker())

	stores, err := factory.NewStores(s.Context(), cfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to create stores", "error", err)
		os.Exit(1)
		return
	}
	defer stores.Close()

	if pool := stores.Pool(); pool != nil {
		s.SetHealthChecker(pg.NewHealthChecker(pool))
	}

	s.SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Casefolio API is running")
	})

	gate := auth.NewGate(cfg.AdminPasscode)

	router.NewCaseRouter(s.Echo, stores.Cases, gate).Bind()
	router.NewArticleRouter(s.Echo, stores.Articles, gate).Bind()
	router.NewAdminRouter(s.Echo, gate).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	if err := s.Start(); err != nil {
		s.Echo.Logger.Error("Failed to start server: ", err)
		os.Exit(1)
	}
}
