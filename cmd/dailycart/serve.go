package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"

	httpapi "github.com/i474232898/dailycart/internal/api/http"
	"github.com/i474232898/dailycart/internal/briefing"
	"github.com/i474232898/dailycart/internal/config"
	"github.com/i474232898/dailycart/internal/estimate"
	"github.com/i474232898/dailycart/internal/sample"
	"github.com/i474232898/dailycart/internal/scheduler"
	"github.com/i474232898/dailycart/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the briefing scheduler",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func runServe() error {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// In-memory store with configured retention.
	memStore := store.NewMemoryStore(cfg.StoreMaxHistory, cfg.StoreMaxAge)

	// Core service orchestrating the estimator and store.
	service := briefing.NewService(memStore, estimate.NewEstimator(nil, nil), briefing.Settings{
		Location:    cfg.Location,
		SalesWindow: cfg.SalesWindow,
	})

	if cfg.SampleSalesDays > 0 {
		gen := sample.NewGenerator()
		yesterday := service.Now().AddDate(0, 0, -1)
		for _, m := range cfg.Markets {
			for _, rec := range gen.Sales(cfg.SampleSalesDays, yesterday) {
				service.RecordSales(m, rec)
			}
		}
		log.Printf("INFO: seeded %d days of sample sales for %d markets", cfg.SampleSalesDays, len(cfg.Markets))
	}

	// Scheduler that periodically generates briefings.
	sched := scheduler.New(cfg.Markets, cfg.BriefingInterval, service)
	if err := sched.Start(); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}
	defer sched.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "dailycart",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "dailycart",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, service)

	go func() {
		log.Printf("INFO: listening on :%s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
	return nil
}
