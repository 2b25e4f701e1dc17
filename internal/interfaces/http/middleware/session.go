// internal/interfaces/http/middleware/session.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionCookie = "session_id"
	sessionKey    = "session_id"
	sessionMaxAge = 30 * 24 * 60 * 60
)

// Session gives every visitor a stable id. All views sharing the cookie share one cart.
func Session(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookie)
		if err != nil || !validSessionID(sessionID) {
			sessionID = uuid.NewString()
		}

		// Refresh on every request so active visitors keep their cart
		c.SetCookie(SessionCookie, sessionID, sessionMaxAge, "/", "", secure, true)
		c.Set(sessionKey, sessionID)
		c.Next()
	}
}

// GetSessionID returns the visitor's session id
func GetSessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}

func validSessionID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
