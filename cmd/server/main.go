package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/littlewardrobe/config"
	"github.com/mmynk/littlewardrobe/internal/metrics"
	"github.com/mmynk/littlewardrobe/internal/middleware"
	"github.com/mmynk/littlewardrobe/internal/models"
	"github.com/mmynk/littlewardrobe/internal/service"
	"github.com/mmynk/littlewardrobe/internal/storage/sqlite"
	"github.com/mmynk/littlewardrobe/internal/tagging"
	"github.com/mmynk/littlewardrobe/internal/weather"
	"github.com/mmynk/littlewardrobe/pkg/api"
	"github.com/mmynk/littlewardrobe/pkg/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.Logger.Level)

	if err := run(cfg); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	// Initialize SQLite storage
	store, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.Database.Path)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	opts := []service.Option{
		service.WithMetrics(m),
		service.WithDefaultSettings(models.Settings{
			Location: models.Location{
				Name:      cfg.Weather.LocationName,
				Latitude:  cfg.Weather.Latitude,
				Longitude: cfg.Weather.Longitude,
			},
			GraceMonths: cfg.Wardrobe.GraceMonths,
		}),
		service.WithWeather(weather.NewClient(weather.Config{
			BaseURL:           cfg.Weather.BaseURL,
			Timeout:           cfg.Weather.Timeout,
			CacheTTL:          cfg.Weather.CacheTTL,
			RequestsPerMinute: cfg.Weather.RequestsPerMinute,
		}, m)),
	}
	if cfg.Tagging.APIKey != "" {
		opts = append(opts, service.WithTagger(tagging.NewClient(tagging.Config{
			BaseURL:           cfg.Tagging.BaseURL,
			APIKey:            cfg.Tagging.APIKey,
			Model:             cfg.Tagging.Model,
			Timeout:           cfg.Tagging.Timeout,
			RequestsPerMinute: cfg.Tagging.RequestsPerMinute,
		})))
		slog.Info("Image tagging enabled", "model", cfg.Tagging.Model)
	} else {
		slog.Warn("Image tagging disabled: no API key configured")
	}

	mux := http.NewServeMux()

	// Register Connect service
	path, handler := api.NewWardrobeServiceHandler(
		service.NewWardrobeService(store, opts...),
		connect.WithInterceptors(
			middleware.LoggingInterceptor(),
			middleware.MetricsInterceptor(m),
		),
	)
	mux.Handle(path, handler)
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	staticDir, err := filepath.Abs(cfg.HTTPServer.StaticPath)
	if err != nil {
		return fmt.Errorf("failed to resolve static path: %w", err)
	}
	slog.Info("Serving static files", "path", staticDir)
	mux.Handle("/", staticHandler(staticDir))

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	h2cHandler := h2c.NewHandler(loggingMiddleware(corsMiddleware(mux)), &http2.Server{})

	addr := fmt.Sprintf(":%d", cfg.HTTPServer.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           h2cHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", addr, "url", fmt.Sprintf("http://localhost%s", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// staticHandler serves the dashboard UI, falling back to index.html.
func staticHandler(staticDir string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Unknown RPCs must not fall through to the UI
		if strings.HasPrefix(r.URL.Path, "/"+api.WardrobeServiceName+"/") {
			http.NotFound(w, r)
			return
		}

		urlPath := r.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}

		filePath := filepath.Join(staticDir, filepath.Clean(urlPath))
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
			return
		}

		http.ServeFile(w, r, filePath)
	})
}

// loggingMiddleware logs all incoming requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
