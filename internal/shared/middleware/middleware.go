package middleware

import (
	"net/http"
	"time"

	"eventx/internal/shared/utils/response"
	"eventx/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs every request through the structured logger
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.LogHTTPRequest(c, time.Since(start))
	}
}

// Recovery converts panics into the standard error envelope. No failure
// in the issuance pipeline is fatal to the process.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered interface{}) {
		log.Error("panic recovered", "panic", recovered, "path", c.Request.URL.Path)
		response.Error(c, http.StatusInternalServerError, "Internal server error", nil)
		c.Abort()
	})
}
