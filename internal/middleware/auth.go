package middleware

import (
	"context"
	"net/http"
	"strings"

	"bookly/internal/domain"

	"github.com/gin-gonic/gin"
)

// IdentityResolver turns a bearer credential into a user record.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, credential string) (*domain.User, error)
}

// Authenticate extracts the bearer token, resolves it to a user and stores
// the identity in the request context.
func Authenticate(resolver IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			abortUnauthorized(c, "Missing Authorization header")
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			abortUnauthorized(c, "Invalid Authorization header")
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			abortUnauthorized(c, "Empty token")
			return
		}

		user, err := resolver.ResolveIdentity(c.Request.Context(), tokenStr)
		if err != nil {
			abortUnauthorized(c, "Invalid token")
			return
		}

		c.Set("user", user)
		c.Set("user_id", user.ID)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
	})
}
