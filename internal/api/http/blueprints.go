package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/forgeui/backend/internal/blueprint"
	"github.com/forgeui/backend/internal/shared/types"
)

// CreateBlueprint archives a blueprint named in the request body.
func (h *Handler) CreateBlueprint(c *gin.Context) {
	var req struct {
		Name      string          `json:"name" binding:"required"`
		Blueprint json.RawMessage `json:"blueprint" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bp, err := blueprint.Parse(req.Blueprint)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	err = h.archive.Save(req.Name, bp)
	h.metrics.RecordArchiveOp("save", err == nil)
	if err != nil {
		c.JSON(archiveStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"saved": true, "name": req.Name})
}

// SaveBlueprint validates and archives a blueprint under a name.
func (h *Handler) SaveBlueprint(c *gin.Context) {
	name := c.Param("name")

	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bp, err := blueprint.Parse(body)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	err = h.archive.Save(name, bp)
	h.metrics.RecordArchiveOp("save", err == nil)
	if err != nil {
		c.JSON(archiveStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved": true, "name": name})
}

// GetBlueprint reads an archived blueprint.
func (h *Handler) GetBlueprint(c *gin.Context) {
	name := c.Param("name")

	bp, err := h.archive.Load(name)
	h.metrics.RecordArchiveOp("load", err == nil)
	if err != nil {
		c.JSON(archiveStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"name": name, "blueprint": bp})
}

// ListBlueprints lists archived blueprint names.
func (h *Handler) ListBlueprints(c *gin.Context) {
	names, err := h.archive.List()
	h.metrics.RecordArchiveOp("list", err == nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"blueprints": names, "count": len(names)})
}

// DeleteBlueprint removes an archived blueprint.
func (h *Handler) DeleteBlueprint(c *gin.Context) {
	name := c.Param("name")

	err := h.archive.Delete(name)
	h.metrics.RecordArchiveOp("delete", err == nil)
	if err != nil {
		c.JSON(archiveStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true, "name": name})
}

// GenerateBlueprint loads an archived blueprint and generates from it.
func (h *Handler) GenerateBlueprint(c *gin.Context) {
	name := c.Param("name")

	bp, err := h.archive.Load(name)
	h.metrics.RecordArchiveOp("load", err == nil)
	if err != nil {
		c.JSON(archiveStatus(err), gin.H{"error": err.Error()})
		return
	}

	var req struct {
		Target  string                 `json:"target"`
		Options *types.GenerateOptions `json:"options,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	target := resolveTarget(req.Target)
	opts := resolveOptions(req.Options)

	start := time.Now()
	source := h.engine.Generate(bp, target, opts)
	h.metrics.RecordGeneration(string(target), time.Since(start), true)

	c.JSON(http.StatusOK, gin.H{
		"name":   name,
		"target": target,
		"source": source,
	})
}

// archiveStatus maps archive errors onto HTTP status codes. The store
// reports a missing entry only through its message text.
func archiveStatus(err error) int {
	switch {
	case strings.Contains(err.Error(), "not found"):
		return http.StatusNotFound
	case strings.Contains(err.Error(), "invalid archive name"):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
