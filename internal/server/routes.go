package server

import (
	"net/http"
	"time"

	"github.com/axiora/axiora-go"
	"github.com/axiora/axiora-go/internal/agent"
	"github.com/axiora/axiora-go/internal/handler"
	"github.com/axiora/axiora-go/internal/middleware"
	"github.com/axiora/axiora-go/tools"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

func (s *Server) setupRoutes() (http.Handler, error) {
	cfg := s.cfg

	// ─── Axiora client (one shared adapter for every tool) ─────────────────────
	clientOpts := []axiora.Option{
		axiora.WithTimeout(time.Duration(cfg.AxioraTimeout) * time.Second),
	}
	if cfg.AxioraAPIKey != "" {
		clientOpts = append(clientOpts, axiora.WithAPIKey(cfg.AxioraAPIKey))
	}
	if cfg.AxioraBaseURL != "" {
		clientOpts = append(clientOpts, axiora.WithBaseURL(cfg.AxioraBaseURL))
	}
	client, err := axiora.New(clientOpts...)
	if err != nil {
		return nil, err
	}

	toolSet, err := tools.Select(client, cfg.SelectedTools...)
	if err != nil {
		return nil, err
	}

	// ─── AI Agent ───────────────────────────────────────────────────────────────
	var ax *agent.Agent
	if cfg.AnthropicAPIKey != "" {
		ax = agent.New(cfg.AnthropicAPIKey, cfg.Model, cfg.AnthropicBaseURL)
	} else {
		log.Warn().Msg("ANTHROPIC_API_KEY not set - /ask disabled")
	}

	log.Info().
		Int("tools", len(toolSet)).
		Bool("agent_enabled", ax != nil).
		Bool("auth_enabled", cfg.EnableAuth && len(cfg.APIKeys) > 0).
		Str("base_url", client.BaseURL()).
		Msg("service configuration")
	if cfg.EnableAuth && len(cfg.APIKeys) == 0 {
		log.Warn().Msg("WARNING: auth enabled but no API keys configured - all API requests will be rejected")
	}

	// ─── Handlers ───────────────────────────────────────────────────────────────
	healthH := handler.NewHealthHandler(client)
	toolsH := handler.NewToolsHandler(toolSet)
	askH := handler.NewAskHandler(ax, toolSet, cfg.AgentTimeout)
	searchH := handler.NewSearchHandler(client)

	// ─── Router ─────────────────────────────────────────────────────────────────
	r := chi.NewRouter()

	r.Use(middleware.Recovery)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(chiMiddleware.RealIP)

	r.Get("/health", healthH.Health)
	r.Get("/", healthH.Health)

	apiMiddleware := []func(http.Handler) http.Handler{
		middleware.RateLimit(cfg.RateLimitPerMinute),
	}
	if cfg.EnableAuth && len(cfg.APIKeys) > 0 {
		apiMiddleware = append(apiMiddleware, middleware.Auth(cfg.APIKeys, cfg.APIKeyHeader))
	}

	r.Group(func(r chi.Router) {
		for _, m := range apiMiddleware {
			r.Use(m)
		}

		r.Route(cfg.APIPrefix, func(r chi.Router) {
			r.Get("/tools", toolsH.List)
			r.Post("/tools/{name}", toolsH.Invoke)
			r.Post("/ask", askH.Ask)
			r.Get("/search", searchH.Search)
		})
	})

	return r, nil
}
