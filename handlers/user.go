// user.go - Handles user registration, lookups, and role administration

package handlers // Declares the package name

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-survey-backend/middleware"
	"go-survey-backend/models"
)

// UserHandler - User resource handlers over an injected store
type UserHandler struct {
	Store UserStore
}

// List - Handler for GET /users (admin only)
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Store.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetByEmail - Handler for GET /users/:email
// A miss returns a null body, matching the raw find-one result.
func (h *UserHandler) GetByEmail(c *gin.Context) {
	user, err := h.Store.FindByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// IsAdmin - Handler for GET /users/admin/:email
// The path email must match the verified token email.
func (h *UserHandler) IsAdmin(c *gin.Context) {
	email := c.Param("email")
	if email != middleware.EmailFromContext(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "unauthorized access"})
		return
	}
	user, err := h.Store.FindByEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	admin := user != nil && user.Role == models.RoleAdmin
	c.JSON(http.StatusOK, gin.H{"admin": admin})
}

// IsSurveyor - Handler for GET /users/surveyor/:email
// Same self-only check as IsAdmin.
func (h *UserHandler) IsSurveyor(c *gin.Context) {
	email := c.Param("email")
	if email != middleware.EmailFromContext(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "unauthorized access"})
		return
	}
	user, err := h.Store.FindByEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	surveyor := user != nil && user.Role == models.RoleSurveyor
	c.JSON(http.StatusOK, gin.H{"surveyor": surveyor})
}

// Role - Handler for GET /user-role
// Returns the caller's stored role; 404 when no user record exists.
func (h *UserHandler) Role(c *gin.Context) {
	email := middleware.EmailFromContext(c)
	user, err := h.Store.FindByEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": user.Role})
}

// Register - Handler for POST /users
// Idempotent by email: re-registering an existing email is a no-op.
// The check-then-insert is not atomic; the unique index on email backstops it.
func (h *UserHandler) Register(c *gin.Context) {
	var input map[string]any
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	email, _ := input["email"].(string)
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}
	existing, err := h.Store.FindByEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusOK, gin.H{"message": "user already exists", "insertedId": nil})
		return
	}
	res, err := h.Store.Insert(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, res)
}

// MakeAdmin - Handler for PATCH /users/admin/:id (admin only)
func (h *UserHandler) MakeAdmin(c *gin.Context) {
	h.updateRoleByID(c, models.RoleAdmin)
}

// MakeSurveyor - Handler for PATCH /users/surveyor/:id (admin only)
func (h *UserHandler) MakeSurveyor(c *gin.Context) {
	h.updateRoleByID(c, models.RoleSurveyor)
}

func (h *UserHandler) updateRoleByID(c *gin.Context, role string) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	res, err := h.Store.UpdateRoleByID(c.Request.Context(), id, role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, res)
}

// MakeProUser - Handler for PATCH /users/proUser/:email
// Any authenticated caller may upgrade a user to proUser (payment flow).
func (h *UserHandler) MakeProUser(c *gin.Context) {
	res, err := h.Store.UpdateRoleByEmail(c.Request.Context(), c.Param("email"), models.RoleProUser)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, res)
}

// Delete - Handler for DELETE /users/:id (admin only)
// Deleting a missing id reports deletedCount 0, not an error.
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	res, err := h.Store.DeleteByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, res)
}
