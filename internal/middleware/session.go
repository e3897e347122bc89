package middleware

import (
	"net/http"

	"ai-chat-bot/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const scopeKey = "scope"

// Session reads the session cookie, issuing a fresh one when it is missing or
// malformed, and stores the resulting Scope in the gin context.
func (m Middleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(m.sessionConfig.CookieName)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			// MaxAge 0 keeps it a browser-session cookie; the store enforces the idle TTL.
			c.SetCookie(m.sessionConfig.CookieName, id, 0, "/", "", m.sessionConfig.CookieSecure, true)
			m.l.Debugf(c.Request.Context(), "middleware.Session: issued session=%s", id)
		}

		SetScope(c, model.Scope{SessionID: id})
		c.Next()
	}
}

// SetScope stores sc in the request context.
func SetScope(c *gin.Context, sc model.Scope) {
	c.Set(scopeKey, sc)
}

// GetScope returns the Scope set by Session.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
