package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/maska-snacks/review-wall/api"
	"github.com/maska-snacks/review-wall/api/validator"
	"github.com/maska-snacks/review-wall/config"
	"github.com/maska-snacks/review-wall/postgres"
	"github.com/maska-snacks/review-wall/redis"
	"github.com/maska-snacks/review-wall/seed"
	"github.com/maska-snacks/review-wall/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	if err := run(logger); err != nil {
		logger.Error("Server stopped", "error", err.Error())
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	blob, err := connectBlob(ctx, cfg)
	if err != nil {
		return err
	}

	st := &store.Store{
		Logger:     logger,
		Blob:       blob,
		ReviewsKey: cfg.ReviewsKey,
		HelpfulKey: cfg.HelpfulKey,
	}
	st.Load(ctx, seed.Reviews())
	logger.Info("Store loaded", "backend", cfg.Backend, "reviews", len(st.Reviews()))

	srv := &http.Server{
		Addr: cfg.Addr,
		Handler: &api.API{
			Logger:       logger,
			Store:        st,
			Val:          validator.New(),
			InitialCount: cfg.InitialCount,
			RevealStep:   cfg.RevealStep,
			PageSize:     cfg.PageSize,
		},
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("Listening", "addr", cfg.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	logger.Info("Shutdown complete")
	return nil
}

func connectBlob(ctx context.Context, cfg config.Config) (store.Blob, error) {
	switch cfg.Backend {
	case config.BackendRedis:
		return redis.Connect(ctx, cfg.RedisAddr)
	case config.BackendPostgres:
		return postgres.Connect(ctx, cfg.PostgresDSN)
	default:
		return store.NewMemoryBlob(), nil
	}
}
