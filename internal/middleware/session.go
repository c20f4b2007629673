package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vandana2004/CookingBlog/internal/session"
)

const sessionKey = "session"

// Sessions attaches a session.Session to every request. The session id lives
// in cookieName; requests without a valid id get a fresh one.
func Sessions(store session.Store, cookieName string, ttl time.Duration, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(cookieName)
		if err != nil || uuid.Validate(sid) != nil {
			sid = uuid.New().String()
		}
		// refresh on every request so active visitors keep their session
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cookieName, sid, int(ttl/time.Second), "/", "", secure, true)

		c.Set(sessionKey, session.New(store, sid))
		c.Next()
	}
}

// GetSession returns the request's session, or nil when Sessions is not installed
func GetSession(c *gin.Context) *session.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*session.Session)
	return sess
}
