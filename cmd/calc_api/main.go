// Package main Safe Calc API
// @title Safe Calc API
// @version 1.0
// @description Evaluates arithmetic expressions safely and keeps a calculation history
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"log/slog"
	"net/http"
	"os"

	_ "github.com/DjordjeVuckovic/safe-calc/docs"
	"github.com/DjordjeVuckovic/safe-calc/internal/calc"
	"github.com/DjordjeVuckovic/safe-calc/internal/router"
	"github.com/DjordjeVuckovic/safe-calc/internal/server"
	"github.com/DjordjeVuckovic/safe-calc/internal/storage/factory"
	"github.com/labstack/echo/v4"
)

func main() {
	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(sCfg.LogLevel)

	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
		return
	}

	s := server.New(sCfg, nil)

	store, healthChecker, err := factory.NewStore(s.Context(), &cfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to create history store", "error", err)
		os.Exit(1)
		return
	}

	s = s.WithHealthChecker(healthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Safe Calc API is running")
	})

	engine := calc.New(calc.WithMaxDepth(cfg.MaxDepth))
	calcRouter := router.NewCalcRouter(s.Echo, store,
		router.WithEngine(engine),
		router.WithMaxExpressionLength(cfg.MaxLength),
	)
	calcRouter.Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	err = s.Start()
	if cerr := store.Close(); cerr != nil {
		slog.Error("Failed to close history store", "error", cerr)
	}
	if err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
