package middleware

import (
	"Minbar/internal/pkg/consts"
	"Minbar/internal/pkg/response"
	"Minbar/internal/pkg/security"
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and injects the user
// identity into the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Fail(c, http.StatusUnauthorized, "missing or malformed token")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := security.ValidateToken(tokenString)
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, "token invalid or expired")
			c.Abort()
			return
		}

		c.Set(consts.UserIDKey, claims.UserID)
		c.Set(consts.RoleKey, claims.Role)

		newCtx := context.WithValue(c.Request.Context(), consts.UserIDKey, claims.UserID)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}
