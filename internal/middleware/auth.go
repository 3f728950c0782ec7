package middleware

import (
	"net/http"
	"strings"

	"github.com/shubham26-source/Nutri-Tracker-App/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	userIDContextKey   = "user_id"
	usernameContextKey = "username"
)

// AuthMiddleware guards protected routes. It extracts the bearer token,
// validates it and stores the caller's identity in the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization header is required",
			})
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization header must be in the format 'Bearer {token}'",
			})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenParts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid token",
			})
			c.Abort()
			return
		}

		c.Set(userIDContextKey, claims.UserID)
		c.Set(usernameContextKey, claims.Username)
		c.Next()
	}
}

// UserIDFromContext returns the authenticated user's id, set by AuthMiddleware.
func UserIDFromContext(c *gin.Context) (int, bool) {
	value, ok := c.Get(userIDContextKey)
	if !ok {
		return 0, false
	}
	userID, ok := value.(int)
	if !ok || userID <= 0 {
		return 0, false
	}
	return userID, true
}
