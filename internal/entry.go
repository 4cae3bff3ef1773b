// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/starford/globelex/internal/api"
	"github.com/starford/globelex/internal/dataset"
	"github.com/starford/globelex/internal/glossary"
	"github.com/starford/globelex/internal/lexicon"
	"github.com/starford/globelex/internal/sse"
)

// NewLogger returns the structured JSON logger used by every command.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewLexicon builds the lexicon service from configuration and performs the
// initial load. A failed load is logged and reported once; the service then
// answers "no data" until a later reload succeeds.
func NewLexicon(ctx context.Context, cfg *Config, logger *slog.Logger) (*lexicon.Service, dataset.Provider, error) {
	provider, err := dataset.NewProvider(cfg.Dataset.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("init dataset: %w", err)
	}
	svc := lexicon.NewService(glossary.NewStore(), provider, cfg.Dataset.Options(), logger)
	// Reload logs its own failure.
	_, _ = svc.Reload(ctx)
	return svc, provider, nil
}

// Run starts the application with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	logger := app.logger
	if logger == nil {
		logger = NewLogger(os.Stdout, cfg.App.LogLevel)
	}
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("dataset_path", cfg.Dataset.Path),
		slog.String("dataset_encoding", cfg.Dataset.Encoding),
		slog.String("log_level", cfg.App.LogLevel.String()))

	defaults, err := cfg.Lookup.State()
	if err != nil {
		return fmt.Errorf("lookup defaults: %w", err)
	}

	svc, provider, err := NewLexicon(ctx, cfg, logger)
	if err != nil {
		return err
	}

	// SSE broker, fed by every reload (watcher and POST /api/reload).
	broker := sse.NewBroker()
	defer broker.Close()
	svc.SetNotifier(broker)

	apiRouter := api.NewRouter(svc, defaults, cfg.Auth.AuthEnabled(), cfg.Auth.Token, broker)

	// Build chi router.
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Health check endpoints (unauthenticated).
	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if _, err := svc.Status(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"no data"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Mount API routes under /api.
	r.Mount("/api", apiRouter)

	httpServer := &http.Server{
		Addr:    cfg.App.HTTP.Address(),
		Handler: r,
	}

	logger.Info("Server starting...", slog.String("http_address", cfg.App.HTTP.Address()))

	g, gCtx := errgroup.WithContext(ctx)

	// Reload the table when the dataset file changes.
	if cfg.Dataset.Watch && cfg.Dataset.Remote() {
		logger.Warn("watcher: not available for a remote dataset, use POST /api/reload",
			slog.String("dataset_path", cfg.Dataset.Path))
	} else if fp, ok := provider.(*dataset.FileProvider); ok && cfg.Dataset.Watch {
		g.Go(func() error {
			onChange := func() { _, _ = svc.Reload(gCtx) }
			if err := glossary.Watch(gCtx, fp.Path(), logger, onChange); err != nil {
				logger.Warn("watcher: disabled", slog.String("error", err.Error()))
			}
			return nil
		})
	}

	// Start HTTP server.
	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}
