package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forgeui/backend/internal/store/tokens"
)

// Tokens returns the full design-token document.
func (h *Handler) Tokens(c *gin.Context) {
	doc, err := h.tokens.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tokens": doc})
}

// TokenCategory returns one token category. Unknown categories come
// back empty rather than erroring.
func (h *Handler) TokenCategory(c *gin.Context) {
	name := c.Param("category")

	category, err := h.tokens.Category(name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": name, "tokens": category})
}

// MergeTokens shallow-merges categories into the token document.
func (h *Handler) MergeTokens(c *gin.Context) {
	var incoming tokens.Document
	if err := c.ShouldBindJSON(&incoming); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, err := h.tokens.Merge(incoming)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"merged": true, "tokens": doc})
}

// ResetTokens restores the built-in default token set.
func (h *Handler) ResetTokens(c *gin.Context) {
	doc, err := h.tokens.Reset()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reset": true, "tokens": doc})
}
