// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/omegapc/omegacms/internal/api"
	"github.com/omegapc/omegacms/internal/backend"
	"github.com/omegapc/omegacms/internal/chat"
	"github.com/omegapc/omegacms/internal/content"
	"github.com/omegapc/omegacms/internal/mcpserver"
	"github.com/omegapc/omegacms/internal/session"
	"github.com/omegapc/omegacms/internal/sse"
	"github.com/omegapc/omegacms/internal/store"
)

// Run starts the content service with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}
	for _, opt := range opts {
		opt(app)
	}
	if app.config == nil {
		return fmt.Errorf("config is required")
	}
	cfg := app.config

	// Initialize structured JSON logger.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("store_driver", cfg.Store.Driver),
		slog.String("backend_mode", cfg.Backend.Mode),
		slog.String("log_level", cfg.App.LogLevel.String()))

	st, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	defer st.Close()

	// SSE broker.
	broker := sse.NewBroker()
	defer broker.Close()

	// Build the content client for the configured backing, the session
	// manager, and the cache. The live client reads its bearer token from
	// the session manager through the closure.
	var sessions *session.Manager
	client := newClient(cfg, st, func() string {
		if sessions == nil {
			return ""
		}
		return sessions.Token()
	})
	sessions = session.NewManager(st, client, logger)
	sessions.Restore()

	cache := content.NewCache(client, logger, broker.PublishContentEvent)
	cache.Refresh(ctx)

	assistant := chat.NewService(cache.CompanyInfo, cfg.Chat.ThinkDelay)

	// Build API service and router.
	h := api.NewHandler(cache, sessions, assistant)
	apiRouter := api.NewRouter(h, sessions, http.HandlerFunc(broker.ServeHTTP), cfg.App.MediaDir)

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
	r.Get("/health/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Mount API routes under /api.
	r.Mount("/api", apiRouter)

	httpServer := &http.Server{
		Addr:    cfg.App.HTTP.Address(),
		Handler: r,
	}

	g, gCtx := errgroup.WithContext(ctx)

	// Watch the file store for out-of-process edits.
	if fs, ok := st.(*store.FS); ok {
		g.Go(func() error {
			if err := content.Watch(gCtx, cache, fs.Root(), logger); err != nil {
				logger.Warn("watcher failed", slog.String("error", err.Error()))
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

// RunMCP starts the MCP stdio server instead of the HTTP surface. Logs go to
// stderr because stdout carries the protocol.
func RunMCP(ctx context.Context, opts ...Option) error {
	app := &application{}
	for _, opt := range opts {
		opt(app)
	}
	if app.config == nil {
		return fmt.Errorf("config is required")
	}
	cfg := app.config

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	st, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	defer st.Close()

	var sessions *session.Manager
	client := newClient(cfg, st, func() string {
		if sessions == nil {
			return ""
		}
		return sessions.Token()
	})
	sessions = session.NewManager(st, client, logger)
	sessions.Restore()

	cache := content.NewCache(client, logger, nil)
	cache.Refresh(ctx)

	assistant := chat.NewService(cache.CompanyInfo, 0)

	logger.Info("Starting MCP server on stdio")
	return mcpserver.New(cache, assistant).ServeStdio()
}

// openStore builds the configured store driver.
func openStore(cfg *Config) (store.Store, error) {
	switch cfg.Store.Driver {
	case StoreDriverSQLite:
		return store.OpenSQLite(cfg.Store.Path)
	case StoreDriverMemory:
		return store.NewMemory(), nil
	default:
		return store.NewFS(cfg.Store.Path)
	}
}

// newClient builds the content client for the configured backing.
func newClient(cfg *Config, st store.Store, token backend.TokenFunc) backend.Client {
	if cfg.Backend.Live() {
		return backend.NewHTTP(cfg.Backend.BaseURL, nil, token)
	}
	return backend.NewLocal(st, cfg.Auth.AdminPassword, cfg.Auth.LoginDelay)
}
