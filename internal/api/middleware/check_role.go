package middleware

import (
	"Minbar/internal/pkg/consts"
	"Minbar/internal/pkg/response"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CheckRole allows the request through only when the authenticated
// user carries one of the given roles. Runs after AuthMiddleware.
func CheckRole(requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(consts.RoleKey)

		for _, required := range requiredRoles {
			if role == required {
				c.Next()
				return
			}
		}

		response.Fail(c, http.StatusForbidden, "insufficient permissions")
		c.Abort()
	}
}
