// auth.go - Handles access token issuing

package handlers // Declares the package name

import (
	"net/http"

	"github.com/gin-gonic/gin" // Gin web framework

	"go-survey-backend/auth" // Token creation
)

type TokenInput struct { // Struct for token request input
	Email string `json:"email" binding:"required,email"` // Identity claim (required)
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

// TokenHandler - Issues signed access tokens
type TokenHandler struct {
	Secret string // Signing secret, injected at startup
}

// Create - Handler for POST /jwt
func (h *TokenHandler) Create(c *gin.Context) {
	var input TokenInput
	if err := c.ShouldBindJSON(&input); err != nil { // Parse JSON input
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	token, err := auth.CreateAccessToken(input.Email, h.Secret, auth.TokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token}) // Return signed token
}
