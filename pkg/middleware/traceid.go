package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TraceIDMiddleware tags every request with a generated id and echoes it in
// the X-Trace-ID header, so a failed sync can be chased through the logs.
func TraceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set("trace_id", id)
		c.Header("X-Trace-ID", id)
		c.Next()
	}
}
