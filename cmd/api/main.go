package main

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

	"github.com/genvault/genvault-go/internal/config"
	"github.com/genvault/genvault-go/internal/crypto"
	"github.com/genvault/genvault-go/internal/handler"
	"github.com/genvault/genvault-go/internal/repository"
	"github.com/genvault/genvault-go/internal/service"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if len(os.Args) > 1 && os.Args[1] == "token" {
		if err := printToken(cfg, os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := serve(cfg); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

// printToken writes a bearer token for the given user to stdout.
func printToken(cfg config.Config, args []string) error {
	if len(args) != 1 || args[0] == "" {
		return errors.New("usage: api token <userId>")
	}
	if cfg.AuthSecret == "" {
		return errors.New("AUTH_SECRET is not set, tokens are not required")
	}
	token, err := crypto.GenerateToken(args[0], cfg.AuthSecret, cfg.TokenExpiry)
	if err != nil {
		return fmt.Errorf("generate token: %w", err)
	}
	fmt.Println(token)
	return nil
}

func serve(cfg config.Config) error {
	sealer, err := crypto.NewSealer(cfg.VaultKey, cfg.VaultSalt, crypto.DefaultKeyParams())
	if err != nil {
		return fmt.Errorf("init sealer: %w", err)
	}

	store, closeStore := openStore(cfg.DatabaseDSN)
	defer closeStore()

	router := handler.NewRouter(handler.RouterConfig{
		Vault:          service.NewVaultService(store, sealer),
		Generator:      service.NewGeneratorService(),
		AuthSecret:     cfg.AuthSecret,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	})

	if cfg.AuthSecret == "" {
		slog.Warn("AUTH_SECRET not set, entry routes are unauthenticated")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

// openStore connects to MySQL when a DSN is configured and falls back to
// the in-memory store otherwise.
func openStore(dsn string) (service.VaultStore, func()) {
	if dsn == "" {
		slog.Warn("DATABASE_DSN not set, entries are kept in memory")
		return repository.NewMemoryRepository(), func() {}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := repository.NewDB(ctx, dsn)
	if err != nil {
		slog.Warn("database connection failed, entries are kept in memory", "error", err)
		return repository.NewMemoryRepository(), func() {}
	}
	if err := repository.EnsureSchema(ctx, db); err != nil {
		slog.Warn("creating schema failed, entries are kept in memory", "error", err)
		db.Close()
		return repository.NewMemoryRepository(), func() {}
	}

	slog.Info("using mysql storage")
	return repository.NewVaultRepository(db), func() { db.Close() }
}
