package httpx

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	CookieName = "sid"
	sidKey     = "sid"
)

// Session makes sure every request carries a session id, issuing a cookie
// on first contact. Ids that are not UUIDs are replaced.
func Session(ttl time.Duration, secure bool) gin.HandlerFunc {
	maxAge := int(ttl / time.Second)
	return func(c *gin.Context) {
		sid, err := c.Cookie(CookieName)
		if err != nil || uuid.Validate(sid) != nil {
			sid = uuid.NewString()
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(CookieName, sid, maxAge, "/", "", secure, true)
		c.Set(sidKey, sid)
		c.Next()
	}
}

// SID returns the request's session id, or "" outside Session.
func SID(c *gin.Context) string {
	return c.GetString(sidKey)
}
