package http

import (
	"github.com/gin-gonic/gin"

	"github.com/forgeui/backend/internal/catalog"
	"github.com/forgeui/backend/internal/generator"
	"github.com/forgeui/backend/internal/infrastructure/logging"
	"github.com/forgeui/backend/internal/infrastructure/monitoring"
	"github.com/forgeui/backend/internal/service"
	"github.com/forgeui/backend/internal/store/archive"
	"github.com/forgeui/backend/internal/store/tokens"
)

// Handler bundles the dependencies shared by all HTTP endpoints.
type Handler struct {
	engine   *generator.Engine
	catalog  *catalog.Catalog
	archive  *archive.Store
	tokens   *tokens.Store
	registry *service.Registry
	metrics  *monitoring.Metrics
	log      *logging.Logger
}

// NewHandler creates the HTTP handler set.
func NewHandler(
	engine *generator.Engine,
	cat *catalog.Catalog,
	arch *archive.Store,
	tok *tokens.Store,
	registry *service.Registry,
	metrics *monitoring.Metrics,
	log *logging.Logger,
) *Handler {
	return &Handler{
		engine:   engine,
		catalog:  cat,
		archive:  arch,
		tokens:   tok,
		registry: registry,
		metrics:  metrics,
		log:      log.Named("http"),
	}
}

// Root reports service identity and health.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(200, gin.H{
		"service": "forgeui-backend",
		"status":  "running",
		"targets": generator.Targets(),
	})
}

// Health reports liveness plus registry statistics.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":   "healthy",
		"registry": h.registry.Stats(),
	})
}
