// docs.go - Shared handler for the free-form collections (comments, reports)
// Both resources have the same surface: open submission, authenticated listing.

package handlers // Declares the package name

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DocHandler - List/insert handlers over a free-form document store
type DocHandler struct {
	Store DocumentStore
}

// List - Returns every document in the collection
func (h *DocHandler) List(c *gin.Context) {
	docs, err := h.Store.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, docs)
}

// Create - Stores the submitted payload unmodified
func (h *DocHandler) Create(c *gin.Context) {
	var input map[string]any
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.Store.Insert(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, res)
}
