package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ndewijer/datetime-formatter/internal/api"
	"github.com/ndewijer/datetime-formatter/internal/config"
	"github.com/ndewijer/datetime-formatter/internal/metrics"
	"github.com/ndewijer/datetime-formatter/internal/service"
	"github.com/ndewijer/datetime-formatter/internal/version"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	formatter := cfg.DateTime.NewFormatter()
	log.Printf("Local timezone: %s, default format: %q", formatter.Location(), formatter.DefaultFormat())

	m := metrics.NewMetrics()

	// Create services
	dateTimeService := service.NewDateTimeService(formatter, m)
	systemService := service.NewSystemService(formatter)

	// Create router
	router := api.NewRouter(dateTimeService, systemService, m, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("Starting server %s on %s", version.Version, cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Wait for interrupt signal (or a listener failure) for graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		log.Println("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server error: %v", err)
	}

	log.Println("Server exited")
}
