package middleware

import (
	"net/http"

	"alfatih-backend/internal/auth"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

// RequireAuth guards admin routes. The header is resolved into an auth
// state first; the guard decides on the state alone and never inspects
// the token itself. Resolutions feed the tracker so state transitions
// (login, expiry) get observed in one place.
func RequireAuth(verifier auth.Verifier, tracker *auth.Tracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		state, session := verifier.Resolve(c.GetHeader("Authorization"))
		if tracker != nil {
			tracker.Observe(state)
		}

		if state != auth.StateAuthenticated {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "sesi tidak valid, silakan login ulang",
			})
			return
		}

		c.Set(sessionKey, session)
		c.Next()
	}
}

// GetSession returns the resolved session for a guarded request.
func GetSession(c *gin.Context) (auth.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return auth.Session{}, false
	}
	sess, ok := v.(auth.Session)
	return sess, ok
}
