package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/joho/godotenv"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/moneymanager/internal/auth"
	"github.com/mmynk/moneymanager/internal/cache"
	"github.com/mmynk/moneymanager/internal/calculator"
	"github.com/mmynk/moneymanager/internal/config"
	"github.com/mmynk/moneymanager/internal/events"
	"github.com/mmynk/moneymanager/internal/metrics"
	"github.com/mmynk/moneymanager/internal/middleware"
	"github.com/mmynk/moneymanager/internal/rollover"
	"github.com/mmynk/moneymanager/internal/rpc"
	"github.com/mmynk/moneymanager/internal/service"
	"github.com/mmynk/moneymanager/internal/storage/sqlite"
	"github.com/mmynk/moneymanager/pkg/logging"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := logging.Setup()
	if err := run(logger); err != nil {
		logger.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initialize storage: %w", err)
	}
	defer store.Close()
	logger.Info("Storage initialized", "database", cfg.DBPath)

	m := metrics.New()

	reports, lru, err := newReportCache(ctx, cfg, logger)
	if err != nil {
		return err
	}

	publisher, err := newPublisher(cfg, logger)
	if err != nil {
		return err
	}
	defer publisher.Close()

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenDuration)
	authenticator := auth.NewPasswordAuthenticator(store)

	// Metrics see every call; logging runs after auth so it can record the caller.
	public := connect.WithInterceptors(
		middleware.MetricsInterceptor(m),
		middleware.OptionalAuth(jwtManager),
		middleware.LoggingInterceptor(logger),
	)
	private := connect.WithInterceptors(
		middleware.MetricsInterceptor(m),
		middleware.RequireAuth(jwtManager),
		middleware.LoggingInterceptor(logger),
	)

	mux := http.NewServeMux()
	mux.Handle(rpc.NewAuthServiceHandler(service.NewAuthService(authenticator, jwtManager, store, logger), public))
	mux.Handle(rpc.NewTransactionServiceHandler(service.NewTransactionService(store, logger), private))
	mux.Handle(rpc.NewGroupServiceHandler(service.NewGroupService(store, publisher, logger), private))
	mux.Handle(rpc.NewLedgerServiceHandler(service.NewLedgerService(store, reports, publisher, m, logger), private))
	mux.Handle("/metrics", m.Handler())
	mux.HandleFunc("/health", healthHandler)

	server := &http.Server{
		Addr: cfg.Addr(),
		// h2c serves HTTP/2 without TLS, which Connect clients may use
		Handler:           h2c.NewHandler(loggingMiddleware(logger, corsMiddleware(cfg.CORSOrigin, mux)), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Connect server starting", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if cfg.RolloverEnabled {
		job := rollover.New(store, m, logger)
		g.Go(func() error {
			return job.Run(ctx, cfg.RolloverInterval)
		})
	}

	if lru != nil {
		g.Go(func() error {
			cache.RunCleanup(ctx, lru, time.Minute, logger)
			return nil
		})
	}

	return g.Wait()
}

// newReportCache picks Redis when configured and an in-process LRU otherwise.
// The LRU is returned separately so its expired entries can be swept.
func newReportCache(ctx context.Context, cfg *config.Config, logger *slog.Logger) (cache.Cache[calculator.Report], *cache.LRUCache[calculator.Report], error) {
	if cfg.RedisURL == "" {
		lru := cache.NewLRUCache[calculator.Report](cfg.CacheSize, cfg.CacheTTL)
		logger.Info("Using in-process report cache", "size", cfg.CacheSize, "ttl", cfg.CacheTTL)
		return lru, lru, nil
	}

	client, err := cache.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("initialize redis: %w", err)
	}
	logger.Info("Using Redis report cache", "ttl", cfg.CacheTTL)
	return cache.NewRedisCache[calculator.Report](client, "moneymanager:", cfg.CacheTTL), nil, nil
}

func newPublisher(cfg *config.Config, logger *slog.Logger) (events.Publisher, error) {
	if cfg.AMQPURL == "" {
		logger.Info("Ledger events disabled - no AMQP_URL provided")
		return events.NopPublisher{}, nil
	}

	p, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange, logger)
	if err != nil {
		return nil, fmt.Errorf("initialize AMQP publisher: %w", err)
	}
	logger.Info("Publishing ledger events", "exchange", cfg.AMQPExchange)
	return p, nil
}

// healthHandler reports liveness.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// loggingMiddleware logs all incoming requests
func loggingMiddleware(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(origin string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
