package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpapi "github.com/Koushikkd07/Soil-Buddy/internal/api/http"
	"github.com/Koushikkd07/Soil-Buddy/internal/chat"
	"github.com/Koushikkd07/Soil-Buddy/internal/config"
	"github.com/Koushikkd07/Soil-Buddy/internal/learning"
	"github.com/Koushikkd07/Soil-Buddy/internal/logger"
	"github.com/Koushikkd07/Soil-Buddy/internal/scheduler"
	"github.com/Koushikkd07/Soil-Buddy/internal/sensors"
	"github.com/Koushikkd07/Soil-Buddy/internal/soil"
	"github.com/Koushikkd07/Soil-Buddy/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatalf("failed to load config: %v", err)
	}
	if err := logger.Init(cfg.LogLevel, cfg.LogFile); err != nil {
		logger.Log.Fatalf("failed to init logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// In-memory store with configured retention.
	memStore := store.NewMemoryStore(cfg.StoreMaxHistory, cfg.StoreMaxAge)

	// A configured gateway replaces the simulated sensor.
	var sens []soil.Sensor
	if cfg.SensorGatewayURL != "" {
		httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
		sens = append(sens, sensors.NewGateway(httpClient, cfg.SensorGatewayURL, cfg.SensorGatewayToken))
	} else {
		sens = append(sens, sensors.NewSimulated(memStore))
	}

	service := soil.NewService(memStore, sens)
	if cfg.SeedDays > 0 {
		for _, garden := range cfg.Gardens {
			service.Seed(garden, cfg.SeedDays)
		}
	}

	// Chat falls back to canned replies when no key is configured.
	var completer chat.Completer
	if cfg.GeminiAPIKey != "" {
		gemini, err := chat.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Log.Fatalf("failed to init gemini: %v", err)
		}
		completer = gemini
	} else {
		logger.Log.Warn("GEMINI_API_KEY is not set; chat will use fallback responses")
	}
	assistant := chat.NewAssistant(completer, chat.NewLimiter(cfg.ChatRateLimit, cfg.ChatRateWindow), cfg.ChatTimeout)
	if completer != nil {
		if err := assistant.Ping(ctx); err != nil {
			logger.Log.WithError(err).Warn("chat completer did not answer; replies may fall back")
		}
	}

	catalog, err := learning.Default()
	if err != nil {
		logger.Log.Fatalf("failed to load learning catalog: %v", err)
	}

	sched := scheduler.New(cfg.Gardens, cfg.PollInterval, service)
	if err := sched.Start(); err != nil {
		logger.Log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:               "soil-buddy",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          30 * time.Second,
		ErrorHandler:          httpapi.ErrorHandler,
	})

	app.Use(fiberlogger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "soil-buddy",
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpapi.RegisterRoutes(app, httpapi.Services{
		Soil:      service,
		Gardens:   memStore,
		Assistant: assistant,
		Catalog:   catalog,
		Tracker:   learning.NewTracker(catalog),
	})

	go func() {
		logger.Log.WithField("port", cfg.Port).Info("soil-buddy listening")
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Log.WithError(err).Error("fiber server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Log.WithError(err).Error("error during shutdown")
	}
}
