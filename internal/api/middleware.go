package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"catalog-service/internal/auth"
	"catalog-service/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthRequired gates a route group behind the bearer token. A missing token
// is a 401; a token that fails verification is a 403.
func AuthRequired(gate *auth.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")

		var token string
		if parts := strings.SplitN(header, " ", 2); len(parts) == 2 {
			token = parts[1]
		}

		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Access token required. Please login first.",
			})
			return
		}

		username, err := gate.VerifyToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "Invalid or expired token",
			})
			return
		}

		c.Set("username", username)
		c.Next()
	}
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
