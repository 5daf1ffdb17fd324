package middleware

import (
	"net/http"
	"strings"

	"tripbook/internal/services"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey    = "userID"
	userEmailKey = "userEmail"
)

// RequireAuth validates the Authorization bearer token and injects the
// session claims into the gin context. Requests without a valid token are
// rejected before the handler runs.
func RequireAuth(tokens services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthenticated(c, "no token provided")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthenticated(c, "invalid token")
			return
		}

		claims, err := tokens.Validate(strings.TrimSpace(parts[1]))
		if err != nil {
			abortUnauthenticated(c, "invalid token")
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Set(userEmailKey, claims.Email)
		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"message":    msg,
		"request_id": GetRequestID(c),
	})
}

// CurrentUserID returns the authenticated user's id set by RequireAuth.
func CurrentUserID(c *gin.Context) int64 {
	if v, ok := c.Get(userIDKey); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}

// CurrentUserEmail returns the authenticated user's email set by RequireAuth.
func CurrentUserEmail(c *gin.Context) string {
	return c.GetString(userEmailKey)
}
