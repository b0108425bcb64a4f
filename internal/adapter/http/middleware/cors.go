package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const allowedMethods = "GET, POST, PATCH, DELETE, OPTIONS"

// CORSMiddleware allows every origin and answers preflight requests itself.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", allowedMethods)
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, X-Request-ID")
		c.Header("Access-Control-Expose-Headers", RequestIDHeader)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
