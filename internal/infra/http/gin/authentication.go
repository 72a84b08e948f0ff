package ginserver

import (
	"net/http"
	"strings"

	gin "github.com/gin-gonic/gin"

	authsvc "chaletbay/internal/app/services/auth"
)

// AuthMiddleware rejects any request without a live administrator session.
// Every booking route sits behind it; only login and health probes are open.
type AuthMiddleware struct {
	Service *authsvc.Service
}

func (m AuthMiddleware) Handle(c *gin.Context) {
	token := extractBearerToken(c.GetHeader("Authorization"))
	if token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "auth required"})
		return
	}
	session, err := m.Service.Resolve(c.Request.Context(), token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "auth required"})
		return
	}
	c.Set("session_user", session.Username)
	c.Next()
}

func extractBearerToken(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
