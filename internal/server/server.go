package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apihttp "github.com/forgeui/backend/internal/api/http"
	"github.com/forgeui/backend/internal/api/middleware"
	"github.com/forgeui/backend/internal/api/ws"
	"github.com/forgeui/backend/internal/catalog"
	"github.com/forgeui/backend/internal/generator"
	"github.com/forgeui/backend/internal/infrastructure/config"
	"github.com/forgeui/backend/internal/infrastructure/logging"
	"github.com/forgeui/backend/internal/infrastructure/monitoring"
	archiveprovider "github.com/forgeui/backend/internal/providers/archive"
	forgeprovider "github.com/forgeui/backend/internal/providers/forge"
	tokensprovider "github.com/forgeui/backend/internal/providers/tokens"
	"github.com/forgeui/backend/internal/service"
	"github.com/forgeui/backend/internal/store/archive"
	"github.com/forgeui/backend/internal/store/tokens"
	"github.com/forgeui/backend/internal/vocab"
)

// Server wires the engine, stores, providers, and transport together.
type Server struct {
	cfg    *config.Config
	log    *logging.Logger
	router *gin.Engine
	http   *http.Server
}

// New builds a fully wired server from configuration.
func New(cfg *config.Config, log *logging.Logger) (*Server, error) {
	tables := vocab.New()
	engine := generator.New(tables)
	metrics := monitoring.New()

	cat := catalog.New()
	seeder := catalog.NewSeeder(cat, cfg.Catalog.PatternsDir)
	loaded, failed, err := seeder.Seed()
	if err != nil {
		return nil, fmt.Errorf("failed to seed patterns: %w", err)
	}
	if loaded > 0 || failed > 0 {
		log.Info("pattern directory seeded",
			zap.Int("loaded", loaded),
			zap.Int("failed", failed))
	}

	archiveStore, err := archive.New(cfg.Storage.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive store: %w", err)
	}

	tokenStore, err := tokens.New(cfg.Storage.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open token store: %w", err)
	}

	registry := service.NewRegistry()
	providers := []service.Provider{
		forgeprovider.NewProvider(engine, cat),
		archiveprovider.NewProvider(archiveStore),
		tokensprovider.NewProvider(tokenStore),
	}
	for _, p := range providers {
		if err := registry.Register(p); err != nil {
			return nil, fmt.Errorf("failed to register provider: %w", err)
		}
	}

	handler := apihttp.NewHandler(engine, cat, archiveStore, tokenStore, registry, metrics, log)
	wsHandler := ws.NewHandler(engine, metrics, log)

	router := buildRouter(cfg, handler, wsHandler, metrics)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	return &Server{
		cfg:    cfg,
		log:    log,
		router: router,
		http: &http.Server{
			Addr:         addr,
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}, nil
}

func buildRouter(cfg *config.Config, handler *apihttp.Handler, wsHandler *ws.Handler, metrics *monitoring.Metrics) *gin.Engine {
	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(metrics.Middleware())

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		router.Use(limiter.Middleware())
	}

	router.GET("/", handler.Root)
	router.GET("/health", handler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.POST("/generate", handler.Generate)
	router.POST("/generate/all", handler.GenerateAll)
	router.GET("/targets", handler.Targets)

	router.GET("/patterns", handler.Patterns)
	router.GET("/patterns/:key", handler.Pattern)

	router.GET("/blueprints", handler.ListBlueprints)
	router.POST("/blueprints", handler.CreateBlueprint)
	router.PUT("/blueprints/:name", handler.SaveBlueprint)
	router.GET("/blueprints/:name", handler.GetBlueprint)
	router.DELETE("/blueprints/:name", handler.DeleteBlueprint)
	router.POST("/blueprints/:name/generate", handler.GenerateBlueprint)

	router.GET("/tokens", handler.Tokens)
	router.GET("/tokens/:category", handler.TokenCategory)
	router.PATCH("/tokens", handler.MergeTokens)
	router.POST("/tokens/reset", handler.ResetTokens)

	router.GET("/services", handler.Services)
	router.POST("/services/execute", handler.Execute)

	router.GET("/ws", wsHandler.Handle)

	return router
}

// Run starts the HTTP server and blocks until it stops.
func (s *Server) Run() error {
	s.log.Info("server starting", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("server shutting down")
	return s.http.Shutdown(ctx)
}
