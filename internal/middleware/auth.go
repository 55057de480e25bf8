package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tripfolio/internal/auth"
	"tripfolio/internal/domain"
)

// ContextKeyUserID is the gin context key holding the authenticated subject.
const ContextKeyUserID = "user_id"

// Auth returns Gin middleware that validates bearer tokens from the identity
// provider and injects the owner subject into the request context.
func Auth(verifier auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "missing or invalid authorization header"},
			})
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		userID, err := verifier.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "invalid or expired token"},
			})
			return
		}

		c.Set(ContextKeyUserID, userID)
		c.Next()
	}
}

// GetUserID extracts the authenticated subject from the Gin context.
func GetUserID(c *gin.Context) (string, error) {
	val, exists := c.Get(ContextKeyUserID)
	if !exists {
		return "", domain.ErrUnauthorized
	}
	return val.(string), nil
}
