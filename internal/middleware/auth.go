package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TallerServices01/maintenance-tracker/internal/session"
)

const (
	ContextSessionID = "sessionID"
	ContextSession   = "session"
)

// RequireSession gates a route on a valid session cookie. An absent or
// invalid cookie redirects to the login form; nothing is mutated and no
// error status is returned.
func RequireSession(mgr *session.Manager, store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, err := c.Cookie(session.CookieName)
		if err != nil {
			redirectToLogin(c)
			return
		}

		sid, err := mgr.Parse(value)
		if err != nil {
			redirectToLogin(c)
			return
		}

		sess, err := store.Load(c.Request.Context(), sid)
		if err != nil {
			redirectToLogin(c)
			return
		}

		c.Set(ContextSessionID, sid)
		c.Set(ContextSession, *sess)

		c.Next()
	}
}

// RequireAdmin gates a route on the session role. A non-admin is sent back to
// fallbackPath with a flash notice, never a 403.
func RequireAdmin(store session.Store, fallbackPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := CurrentSession(c)
		if !ok || !sess.IsAdmin() {
			if sid, haveSID := SessionID(c); haveSID {
				_ = store.PushFlash(c.Request.Context(), sid, "Solo el administrador puede realizar esta acción")
			}
			c.Redirect(http.StatusFound, fallbackPath)
			c.Abort()
			return
		}

		c.Next()
	}
}

func CurrentSession(c *gin.Context) (session.Session, bool) {
	val, ok := c.Get(ContextSession)
	if !ok {
		return session.Session{}, false
	}
	sess, ok := val.(session.Session)
	return sess, ok
}

func SessionID(c *gin.Context) (string, bool) {
	val, ok := c.Get(ContextSessionID)
	if !ok {
		return "", false
	}
	sid, ok := val.(string)
	return sid, ok
}

func redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, "/login")
	c.Abort()
}
