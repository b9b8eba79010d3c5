// internal/middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/greenbasket/catalog-api/internal/utils"
)

// AuthRequired is the authorization gate: it validates the Bearer token and
// injects the authenticated identity into the request context, or rejects
// the request outright.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": utils.MsgUnauthorized})
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": utils.MsgUnauthorized})
			c.Abort()
			return
		}

		claims, err := utils.ValidateJWT(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": utils.MsgUnauthorized})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("account", claims.Account)
		c.Next()
	}
}
