package handler

import (
	"net/http"

	"github.com/genvault/genvault-go/internal/middleware"
	"github.com/genvault/genvault-go/internal/service"
	"github.com/go-chi/chi/v5"
)

// RouterConfig wires the services and limits of the vault API.
type RouterConfig struct {
	Vault     *service.VaultService
	Generator *service.GeneratorService

	// AuthSecret enables bearer-token checks on entry routes when set.
	AuthSecret string

	RateLimitRPS   float64
	RateLimitBurst int
}

// NewRouter builds the vault API routes.
func NewRouter(cfg RouterConfig) http.Handler {
	vaultHandler := NewVaultHandler(cfg.Vault)
	genHandler := NewGeneratorHandler(cfg.Generator)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Save and generate draw from one per-IP budget.
	rateLimit := middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst)

	r.With(rateLimit).Post("/api/generate", genHandler.HandleGenerate)

	r.Group(func(r chi.Router) {
		if cfg.AuthSecret != "" {
			r.Use(middleware.JWTAuth(cfg.AuthSecret))
		}
		r.Get("/api/entries/{userId}", vaultHandler.HandleListEntries)
		r.With(rateLimit).Post("/api/save/{userId}", vaultHandler.HandleSaveEntry)
	})

	return r
}
