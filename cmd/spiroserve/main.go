// Command spiroserve serves curve and field previews over HTTP.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/gogpu/spiro"
	"github.com/gogpu/spiro/internal/config"
	"github.com/gogpu/spiro/internal/middleware"
	"github.com/gogpu/spiro/internal/preview"
)

// ============================================================
// Preview Service
// ============================================================

func main() {
	cfg := config.Load()
	spiro.SetLogger(newLogger(cfg))

	presets, err := loadPresets(cfg.PresetsPath)
	if err != nil {
		log.Fatalf("Failed to load presets: %v", err)
	}

	app := newApp(cfg, presets)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting Preview Service on %s (env: %s)", addr, cfg.Environment)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func newApp(cfg *config.Config, presets spiro.Presets) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeoutDuration(),
		WriteTimeout: cfg.WriteTimeoutDuration(),
		AppName:      "Spiro Preview Service",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.Logger())
	app.Use(middleware.CORS())

	// ============================================================
	// Health Check Routes
	// ============================================================

	app.Get("/health/live", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "alive"})
	})

	// ============================================================
	// Preview Routes
	// ============================================================

	store := preview.NewStore(cfg.MaxSessions, nil)
	preview.NewHandler(store, presets, cfg.FrameWidth, cfg.FrameHeight).Register(app.Group("/api/v1"))

	return app
}

func newLogger(cfg *config.Config) *slog.Logger {
	if cfg.Development() {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, nil))
}

func loadPresets(path string) (spiro.Presets, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path) //nolint:gosec // path comes from the operator's environment
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return spiro.LoadPresets(f)
}
