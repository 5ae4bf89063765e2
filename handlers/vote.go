// vote.go - Handles vote submission and listing

package handlers // Declares the package name

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// VoteHandler - Vote resource handlers over an injected store
type VoteHandler struct {
	Store VoteStore
}

// List - Handler for GET /vote (public)
// An optional ?email= query restricts results to one voter.
func (h *VoteHandler) List(c *gin.Context) {
	votes, err := h.Store.List(c.Request.Context(), c.Query("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, votes)
}

// Create - Handler for POST /vote (public)
// The payload is stored as submitted; votes are append-only.
func (h *VoteHandler) Create(c *gin.Context) {
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
