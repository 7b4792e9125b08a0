package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"site-contact/pkg/logger"
)

const (
	HeaderRequestID = "X-Request-Id"
	KeyRequestID    = "request_id"
)

// RequestID keeps an incoming X-Request-Id or generates one, echoes it back
// and stores it on the request context for logging.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(HeaderRequestID)
		if rid == "" || len(rid) > 128 {
			rid = uuid.NewString()
		}

		c.Set(KeyRequestID, rid)
		c.Header(HeaderRequestID, rid)
		c.Request = c.Request.WithContext(logger.WithRequestID(c.Request.Context(), rid))

		c.Next()
	}
}
