package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/idot-digital/dbconsole/internal/auth"
	"github.com/idot-digital/dbconsole/internal/config"
	"github.com/idot-digital/dbconsole/internal/dbsync"
	"github.com/idot-digital/dbconsole/internal/handlers"
	"github.com/idot-digital/dbconsole/internal/middleware"
	"github.com/idot-digital/dbconsole/internal/server"
	"github.com/idot-digital/dbconsole/internal/store"
)

func main() {
	cfg := config.New()

	// Initialize logger
	jsonHandler := slog.NewJSONHandler(os.Stderr, nil)
	log := slog.New(jsonHandler)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize the store, applying the embedded schema
	st, err := openStore(ctx, cfg)
	if err != nil {
		log.Error("Failed to open store", "driver", cfg.DBDriver, "error", err)
		os.Exit(1)
	}
	defer st.Close()

	sessions, err := openSessions(ctx, cfg)
	if err != nil {
		log.Error("Failed to connect to Redis", "address", cfg.RedisAddr, "error", err)
		os.Exit(1)
	}

	authn := auth.NewAuthenticator(st, sessions, cfg.AuthToken, cfg.SessionTTL)
	srv := server.New(st, authn, cfg.AuditBufferSize, log)
	defer srv.Close()

	syncer := dbsync.New(st, dbsync.Connect, log)
	grpcHandlers := handlers.NewGRPCHandlers(srv, syncer, cfg.ExternalURL)

	if cfg.ReviewTemplates != "" {
		templates, err := config.LoadReviewTemplates(cfg.ReviewTemplates)
		if err != nil {
			log.Error("Failed to load review templates", "path", cfg.ReviewTemplates, "error", err)
			os.Exit(1)
		}
		if err := grpcHandlers.SeedReviewConfigs(ctx, templates); err != nil {
			log.Error("Failed to seed review configs", "error", err)
			os.Exit(1)
		}
		log.Info("Seeded review configs", "count", len(templates))
	}

	interceptors := []grpc.UnaryServerInterceptor{
		middleware.MetricsInterceptor(),
		middleware.AuthInterceptor(authn, middleware.PublicMethods...),
		middleware.AuditInterceptor(srv),
	}
	httpHandlers, err := handlers.NewHTTPHandlers(srv, grpcHandlers, middleware.Chain(interceptors...))
	if err != nil {
		log.Error("Failed to build REST gateway", "error", err)
		os.Exit(1)
	}

	// Create gRPC server with auth interceptors
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(interceptors...))
	grpcHandlers.Register(s)

	// Add Prometheus metrics endpoint (no auth required)
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", middleware.Logging(log)(middleware.Auth(httpHandlers)))
	rest := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.RESTPort),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
		if err != nil {
			return fmt.Errorf("listen for gRPC: %w", err)
		}
		log.Info("gRPC server listening", "address", lis.Addr().String())
		return s.Serve(lis)
	})
	g.Go(func() error {
		log.Info("REST server listening", "address", rest.Addr)
		if err := rest.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve REST: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := syncer.SyncAll(ctx); err != nil {
			log.Warn("Initial instance sync failed", "error", err)
		}
		return syncer.Run(ctx, cfg.SyncInterval)
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := rest.Shutdown(shutdownCtx); err != nil {
			log.Error("Failed to shut down REST server", "error", err)
		}
		s.GracefulStop()
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("Server stopped", "error", err)
		srv.Close()
		os.Exit(1)
	}
}

func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.DBDriver {
	case config.DriverMemory:
		return store.NewMemory(), nil
	case config.DriverPostgres:
		return store.OpenSQL(ctx, store.Postgres, cfg.GetDBURI())
	}
	return store.OpenSQL(ctx, store.MySQL, cfg.GetDBURI())
}

// openSessions keeps sessions in Redis when an address is configured and in
// memory otherwise.
func openSessions(ctx context.Context, cfg *config.Config) (auth.Sessions, error) {
	if cfg.RedisAddr == "" {
		return auth.NewMemorySessions(), nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return auth.NewRedisSessions(client), nil
}
