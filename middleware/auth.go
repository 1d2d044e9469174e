package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"
)

const strAccountID = "relay_account_id"

// AccountAuth verifies bearer tokens for the management API. The real
// identity provider sits in front of this service; tokens here take the
// form "{secret}.{accountID}" with the shared secret proving the caller
// came through that gate. The webhook endpoint is not behind this: the
// source platform addresses accounts by URL.
func AccountAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if token == header {
			c.Header("WWW-Authenticate", "Authorization Required")
			c.AbortWithStatus(401)
			return
		}

		parts := strings.SplitN(token, ".", 2)
		if len(parts) != 2 || parts[1] == "" || !secureCompare(parts[0], secret) {
			c.Header("WWW-Authenticate", "Authorization Required")
			c.AbortWithStatus(401)
			return
		}

		c.Set(strAccountID, parts[1])
	}
}

// GetAccountID returns the authenticated account id from the request
// context. Empty when the request did not pass AccountAuth.
func GetAccountID(c *gin.Context) string {
	accountID, _ := c.Get(strAccountID)
	id, _ := accountID.(string)
	return id
}

func secureCompare(given, actual string) bool {
	if subtle.ConstantTimeEq(int32(len(given)), int32(len(actual))) == 1 {
		return subtle.ConstantTimeCompare([]byte(given), []byte(actual)) == 1
	}
	// Securely compare actual to itself to keep constant time,
	// but always return false.
	return subtle.ConstantTimeCompare([]byte(actual), []byte(actual)) == 1 && false
}
