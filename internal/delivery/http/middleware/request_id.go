package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kodig3618/Job-Tracker/internal/domain"
)

// RequestID attaches a unique id to every request so log lines and error
// envelopes can be correlated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(string(domain.KeyRequestID), id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
