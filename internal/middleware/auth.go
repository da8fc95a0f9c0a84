package middleware

import (
	"errors"
	"net/http"

	"github.com/AWeheid/RamadanQuizesAlWeheid/internal/services"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the cookie carrying the participant session token.
const SessionCookie = "quiz_session"

// SessionAuth resolves the session cookie to a participant and stores the
// identity on the context. Expired sessions are reported distinctly so the
// client knows to log in again.
func SessionAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		participant, err := authService.ValidateSession(token)
		if err != nil {
			if errors.Is(err, services.ErrSessionExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
			return
		}

		c.Set("participant_id", participant.ID)
		c.Set("participant_name", participant.Name)
		c.Next()
	}
}

// AdminAuth gates admin endpoints behind the shared secret in X-Admin-Token.
func AdminAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-Admin-Token")
		if token == "" || token != secret {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}
