package middleware

import (
	"net/http"

	"github.com/toushik018/hardal/internal/session"

	"github.com/gin-gonic/gin"
)

const tokenKey = "apiToken"

// SessionMiddleware gates shop routes behind a bootstrapped session. The api
// token travels in the session cookie and is pinned to the IP it was issued
// to; a mismatch is treated as session reuse and rejected.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		if err != nil || token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing session, call /session/check first"})
			c.Abort()
			return
		}

		issuedIP, _ := c.Cookie(session.ClientIPName)
		if issuedIP != "" && issuedIP != c.ClientIP() {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "session was issued to a different client"})
			c.Abort()
			return
		}

		c.Set(tokenKey, token)
		c.Next()
	}
}

// Token returns the api token attached by SessionMiddleware.
func Token(c *gin.Context) string {
	return c.GetString(tokenKey)
}
