package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/snackshop/internal/auth"
	"github.com/MikeMC777/snackshop/internal/backend"
	"github.com/MikeMC777/snackshop/internal/session"
)

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	return r
}

func TestRequestID_EchoesOrGenerates(t *testing.T) {
	r := newEngine(RequestID(), Logger())
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(ridKey)) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(ridHeader, "abc")
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Header().Get(ridHeader))
	assert.Equal(t, "abc", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.NoError(t, uuid.Validate(w.Header().Get(ridHeader)))
}

func TestSession_IssuesAndKeepsCookie(t *testing.T) {
	r := newEngine(Session(time.Hour, false))
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, SID(c)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, 3600, cookies[0].MaxAge)
	sid := w.Body.String()
	assert.Equal(t, cookies[0].Value, sid)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: sid})
	r.ServeHTTP(w, req)
	assert.Equal(t, sid, w.Body.String())

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "../../etc"})
	r.ServeHTTP(w, req)
	assert.NotEqual(t, "../../etc", w.Body.String())
}

func TestRequireAdmin(t *testing.T) {
	ctx := context.Background()
	sessions := auth.NewSessions(session.NewMemoryStore(), nil)
	require.NoError(t, sessions.Save(ctx, "admin", auth.Identity{Token: "t1", User: auth.User{Username: "a", Role: auth.RoleAdmin}}))
	require.NoError(t, sessions.Save(ctx, "user", auth.Identity{Token: "t2", User: auth.User{Username: "u", Role: "USER"}}))

	reached := 0
	r := newEngine(func(c *gin.Context) {
		c.Set(sidKey, c.GetHeader("X-Sid"))
		c.Next()
	})
	r.GET("/admin", RequireAdmin(sessions), func(c *gin.Context) {
		reached++
		id, ok := Identity(c)
		require.True(t, ok)
		c.String(http.StatusOK, id.User.Username)
	})
	r.GET("/me", RequireAuth(sessions), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	call := func(path, sid string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("X-Sid", sid)
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusUnauthorized, call("/admin", "nobody").Code)
	assert.Equal(t, http.StatusForbidden, call("/admin", "user").Code)
	w := call("/admin", "admin")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "a", w.Body.String())
	assert.Equal(t, 1, reached)

	assert.Equal(t, http.StatusNoContent, call("/me", "user").Code)
	assert.Equal(t, http.StatusUnauthorized, call("/me", "nobody").Code)
}

func TestFailBackend(t *testing.T) {
	cases := []struct {
		err  error
		code int
		msg  string
	}{
		{backend.ErrUnavailable, http.StatusServiceUnavailable, backend.ErrUnavailable.Error()},
		{&backend.APIError{Status: 404, Body: "no such product"}, http.StatusNotFound, "no such product"},
		{&backend.APIError{Status: 500, Body: "db down"}, http.StatusBadGateway, "db down"},
		{errors.New("dial tcp: refused"), http.StatusBadGateway, "dial tcp: refused"},
	}
	for _, tc := range cases {
		r := newEngine()
		r.GET("/x", func(c *gin.Context) { FailBackend(c, tc.err) })
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, tc.code, w.Code)
		assert.JSONEq(t, `{"error":`+quote(tc.msg)+`}`, w.Body.String())
	}
}

func quote(s string) string {
	return `"` + s + `"`
}
