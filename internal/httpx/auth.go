package httpx

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/snackshop/internal/auth"
)

const identityKey = "identity"

// RequireAuth rejects requests without a logged-in session with 401.
func RequireAuth(sessions *auth.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := loadIdentity(c, sessions); !ok {
			return
		}
		c.Next()
	}
}

// RequireAdmin is RequireAuth plus the ADMIN role, 403 otherwise.
func RequireAdmin(sessions *auth.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := loadIdentity(c, sessions)
		if !ok {
			return
		}
		if !id.IsAdmin() {
			Fail(c, http.StatusForbidden, "Admin only. Please sign in as ADMIN.")
			return
		}
		c.Next()
	}
}

// Identity returns what RequireAuth or RequireAdmin stored.
func Identity(c *gin.Context) (auth.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return auth.Identity{}, false
	}
	id, ok := v.(auth.Identity)
	return id, ok
}

func loadIdentity(c *gin.Context, sessions *auth.Sessions) (auth.Identity, bool) {
	id, err := sessions.Current(c.Request.Context(), SID(c))
	if errors.Is(err, auth.ErrUnauthorized) {
		Fail(c, http.StatusUnauthorized, "please sign in")
		return id, false
	}
	if err != nil {
		log.Printf("[http] session lookup: %v", err)
		Fail(c, http.StatusInternalServerError, "session unavailable")
		return id, false
	}
	c.Set(identityKey, id)
	return id, true
}
