package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/forgeui/backend/internal/api/middleware"
	"github.com/forgeui/backend/internal/shared/types"
)

// Services lists registered service definitions, optionally filtered by
// category.
func (h *Handler) Services(c *gin.Context) {
	var category *types.Category
	if raw := c.Query("category"); raw != "" {
		cat := types.Category(raw)
		category = &cat
	}

	services := h.registry.List(category)
	c.JSON(http.StatusOK, gin.H{"services": services, "count": len(services)})
}

// Execute runs a registered service tool.
func (h *Handler) Execute(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reqCtx := &types.Context{}
	if id := c.GetString(middleware.RequestIDKey); id != "" {
		reqCtx.RequestID = &id
	}

	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params, reqCtx)
	if err != nil && result == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if !result.Success {
		h.log.Debug("tool execution failed",
			zap.String("tool_id", req.ToolID),
			zap.Stringp("error", result.Error))
	}

	c.JSON(http.StatusOK, result)
}
