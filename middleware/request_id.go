package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Happykiller/DraftDream-sub004/util"
)

// RequestID tags every request with a uuid, echoed in the response header
// and carried into log lines and audit entries.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(util.RequestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
