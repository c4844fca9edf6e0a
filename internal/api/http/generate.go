package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/forgeui/backend/internal/generator"
	"github.com/forgeui/backend/internal/shared/types"
)

// Generate emits component source for a blueprint and target.
func (h *Handler) Generate(c *gin.Context) {
	var req types.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	target := resolveTarget(req.Target)
	opts := resolveOptions(req.Options)

	start := time.Now()
	source, err := h.engine.GenerateJSON(req.Blueprint, target, opts)
	h.metrics.RecordGeneration(string(target), time.Since(start), err == nil)

	if err != nil {
		h.log.Warn("blueprint rejected", zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"target": target,
		"source": source,
	})
}

// GenerateAll emits component source for every target at once.
func (h *Handler) GenerateAll(c *gin.Context) {
	var req types.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	opts := resolveOptions(req.Options)

	sources := make(map[string]string, len(generator.Targets()))
	for _, target := range generator.Targets() {
		start := time.Now()
		source, err := h.engine.GenerateJSON(req.Blueprint, target, opts)
		h.metrics.RecordGeneration(string(target), time.Since(start), err == nil)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		sources[string(target)] = source
	}

	c.JSON(http.StatusOK, gin.H{"sources": sources})
}

// Targets lists the recognized target identifiers.
func (h *Handler) Targets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"targets": generator.Targets()})
}

// resolveTarget maps a wire target string onto a Target. Unknown values
// pass through; the engine applies the react-tailwind fallback.
func resolveTarget(raw string) generator.Target {
	if raw == "" {
		return generator.TargetReactTailwind
	}
	return generator.Target(raw)
}

// resolveOptions converts wire options (absent means enabled) into
// engine options.
func resolveOptions(wire *types.GenerateOptions) generator.Options {
	opts := generator.DefaultOptions()
	if wire == nil {
		return opts
	}
	if wire.WithTypes != nil {
		opts.WithTypes = *wire.WithTypes
	}
	if wire.WithDocs != nil {
		opts.WithDocs = *wire.WithDocs
	}
	return opts
}
