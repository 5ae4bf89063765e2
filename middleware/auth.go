// auth.go - Token verification and admin role middleware
//
// Authentication Flow:
// 1. Extract token from Authorization header
// 2. Validate token signature and expiration
// 3. Extract email from token claims
// 4. Store email in context for handlers
//
// Authorization Flow (Admin):
// 1. Run after the token middleware
// 2. Read email from context
// 3. Query the user store for the caller's record
// 4. Allow only when the stored role is "admin"

package middleware // Declares the package name

import ( // Import required packages
	"context"  // Context for store lookups
	"net/http" // HTTP status codes
	"strings"  // String operations (for header parsing)

	"github.com/gin-gonic/gin" // Gin web framework (for middleware)

	"go-survey-backend/auth"   // Token parsing
	"go-survey-backend/models" // User model (for role checking)
)

// EmailKey - Context key under which the verified caller email is stored
const EmailKey = "email"

// RoleLookup - The single read the admin gate needs from the user store
type RoleLookup interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// RequireToken - Returns a Gin middleware function that verifies the bearer token
// A missing or invalid credential terminates the request with 403.
func RequireToken(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// STEP 1: Extract Authorization header
		header := c.GetHeader("Authorization")                     // Get Authorization header
		if header == "" || !strings.HasPrefix(header, "Bearer ") { // If missing or invalid format
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access denied"})
			return
		}

		// STEP 2: Parse and validate the token
		tokenStr := strings.TrimPrefix(header, "Bearer ") // Remove 'Bearer ' prefix
		claims, err := auth.ParseValidate(tokenStr, secret)
		if err != nil { // If token is invalid or expired
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid token"})
			return
		}

		// STEP 3: Store the verified email in context for later use
		c.Set(EmailKey, claims.Email)

		c.Next() // Continue to next handler
	}
}

// RequireAdmin - Returns a Gin middleware function for admin access control
// Must run after RequireToken. Re-reads the user store on every call;
// role lookups are never cached.
func RequireAdmin(users RoleLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := EmailFromContext(c) // Set by RequireToken

		user, err := users.FindByEmail(c.Request.Context(), email) // Look up the caller's record
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		if user == nil || user.Role != models.RoleAdmin { // No record or not admin
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "you are not an admin"})
			return
		}

		c.Next() // Continue to next handler (admin access granted)
	}
}

// EmailFromContext - Returns the verified email RequireToken stored, or ""
func EmailFromContext(c *gin.Context) string {
	return c.GetString(EmailKey)
}
