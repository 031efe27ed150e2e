package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/vernala/vernala-backend/internal/adapter/postgres"
	"github.com/vernala/vernala-backend/internal/adapter/postgres/lookup"
	"github.com/vernala/vernala-backend/internal/adapter/postgres/word"
	"github.com/vernala/vernala-backend/internal/config"
	"github.com/vernala/vernala-backend/internal/service/language"
	"github.com/vernala/vernala-backend/internal/service/translate"
	"github.com/vernala/vernala-backend/internal/transport/middleware"
	"github.com/vernala/vernala-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects
// to the database, wires the services and HTTP transport, and serves
// until the context is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	wordRepo := word.New(pool)
	lookupRepo := lookup.New(pool)

	translateSvc := translate.NewService(logger, lookupRepo, wordRepo)
	languageSvc := language.NewService(logger, wordRepo)

	mux := rest.NewRouter(
		rest.NewTranslateHandler(logger, translateSvc),
		rest.NewLanguageHandler(logger, languageSvc),
		rest.NewHealthHandler(pool, BuildVersion()),
	)

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	)(mux)

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down",
		slog.Duration("timeout", cfg.Server.ShutdownTimeout),
	)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}
