// Package httpx holds the gin middleware shared by the storefront routes.
package httpx

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ridKey    = "rid"
	ridHeader = "X-Request-ID"
)

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(ridHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(ridKey, rid)
		c.Writer.Header().Set(ridHeader, rid)
		c.Next()
	}
}

// Logger logs one line per request. The session id is included once the
// Session middleware has run.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		rid, _ := c.Get(ridKey)
		log.Printf("[http] rid=%v sid=%s %s %s status=%d dur=%s",
			rid, shortSID(SID(c)), c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

func shortSID(sid string) string {
	if len(sid) > 8 {
		return sid[:8]
	}
	return sid
}
