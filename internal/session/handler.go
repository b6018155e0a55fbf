package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	CookieName   = "session"
	ClientIPName = "client_ip"

	cookieMaxAge = 12 * 60 * 60
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Check issues or refreshes the browsing session. The token and the client IP
// it was issued to travel in HttpOnly cookies; a changed IP forces a fresh
// login.
func (h *Handler) Check(c *gin.Context) {
	existingToken, _ := c.Cookie(CookieName)
	issuedIP, _ := c.Cookie(ClientIPName)
	clientIP := c.ClientIP()

	token, reused, err := h.service.Bootstrap(c.Request.Context(), existingToken, issuedIP, clientIP)
	if err != nil {
		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(CookieName, "", -1, "/", "", true, true)
		c.SetCookie(ClientIPName, "", -1, "/", "", true, true)
		c.JSON(http.StatusForbidden, gin.H{"expired": true, "error": err.Error()})
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(CookieName, token, cookieMaxAge, "/", "", true, true)
	c.SetCookie(ClientIPName, clientIP, cookieMaxAge, "/", "", true, true)

	c.JSON(http.StatusOK, gin.H{
		"sessionData": gin.H{"success": "true", "api_token": token},
		"clientIP":    clientIP,
		"reused":      reused,
	})
}
