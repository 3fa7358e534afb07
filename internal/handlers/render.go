package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/TallerServices01/maintenance-tracker/internal/middleware"
	"github.com/TallerServices01/maintenance-tracker/internal/session"
)

// render merges the session identity and any pending flash notices into the
// template data before rendering.
func render(c *gin.Context, store session.Store, page string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if sess, ok := middleware.CurrentSession(c); ok {
		data["CurrentUser"] = sess
	}

	if sid, ok := middleware.SessionID(c); ok {
		if msgs, err := store.PopFlashes(c.Request.Context(), sid); err == nil && len(msgs) > 0 {
			data["Flashes"] = msgs
		}
	}

	c.HTML(http.StatusOK, page, data)
}

func flashAndRedirect(c *gin.Context, store session.Store, msg, location string) {
	if sid, ok := middleware.SessionID(c); ok {
		_ = store.PushFlash(c.Request.Context(), sid, msg)
	}
	c.Redirect(http.StatusFound, location)
}

// mustSID returns the session id from context; always set behind RequireSession.
func mustSID(c *gin.Context) string {
	sid, _ := middleware.SessionID(c)
	return sid
}

func serverError(c *gin.Context) {
	c.String(http.StatusInternalServerError, "Error interno del servidor")
	c.Abort()
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
