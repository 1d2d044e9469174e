package middleware

import (
	"github.com/dchest/uniuri"
	"github.com/gin-gonic/gin"
)

const strRequestID = "relay_request_id"

// RequestID tags each request with an opaque id, echoed in the response
// headers so deliveries can be correlated with log lines.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uniuri.NewLen(16)
		}
		c.Set(strRequestID, id)
		c.Header("X-Request-ID", id)
	}
}

// GetRequestID returns the request's id, if RequestID ran.
func GetRequestID(c *gin.Context) string {
	requestID, _ := c.Get(strRequestID)
	id, _ := requestID.(string)
	return id
}
