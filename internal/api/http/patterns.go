package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Patterns lists the keys of the pattern catalogue.
func (h *Handler) Patterns(c *gin.Context) {
	keys := h.catalog.Keys()
	c.JSON(http.StatusOK, gin.H{
		"patterns": keys,
		"count":    len(keys),
	})
}

// Pattern returns one catalogue blueprint. An unknown key resolves to
// the default pattern; known is reported so callers can tell.
func (h *Handler) Pattern(c *gin.Context) {
	key := c.Param("key")
	c.JSON(http.StatusOK, gin.H{
		"key":       key,
		"known":     h.catalog.Has(key),
		"blueprint": h.catalog.Lookup(key),
	})
}
