package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/snackshop/internal/admin"
	"github.com/MikeMC777/snackshop/internal/auth"
	"github.com/MikeMC777/snackshop/internal/backend"
	"github.com/MikeMC777/snackshop/internal/cart"
	"github.com/MikeMC777/snackshop/internal/catalog"
	"github.com/MikeMC777/snackshop/internal/config"
	"github.com/MikeMC777/snackshop/internal/docs"
	"github.com/MikeMC777/snackshop/internal/events"
	"github.com/MikeMC777/snackshop/internal/httpx"
	"github.com/MikeMC777/snackshop/internal/motion"
	"github.com/MikeMC777/snackshop/internal/recent"
	"github.com/MikeMC777/snackshop/internal/session"
)

//
// ---------- FAKES ----------
//

// fakeAPI plays the catalog REST backend: auth and admin endpoints.
type fakeAPI struct {
	mu      sync.Mutex
	deleted []string
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req auth.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		switch {
		case req.Password != "secret":
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Invalid credentials"}`))
		case req.EmailOrUsername == "boss":
			_, _ = w.Write([]byte(`{"token":"admin-token","username":"boss","role":"ADMIN"}`))
		default:
			_, _ = w.Write([]byte(`{"token":"user-token","username":"` + req.EmailOrUsername + `","role":"USER"}`))
		}
	})
	mux.HandleFunc("/auth/register", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	mux.HandleFunc("/admin/products/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer admin-token" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		if r.Method == http.MethodDelete {
			f.mu.Lock()
			f.deleted = append(f.deleted, strings.TrimPrefix(r.URL.Path, "/admin/products/"))
			f.mu.Unlock()
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.WriteHeader(http.StatusMethodNotAllowed)
	})
	mux.HandleFunc("/admin/products", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"_id":"new-1","name":"Trail Mix","price":4.25}`))
	})
	return mux
}

type testEnv struct {
	router *gin.Engine
	api    *fakeAPI
	bus    *events.LocalBus
	cookie *http.Cookie
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fa := &fakeAPI{}
	srv := httptest.NewServer(fa.handler())
	t.Cleanup(srv.Close)

	static, err := catalog.LoadStatic("")
	if err != nil {
		t.Fatalf("static catalog: %v", err)
	}
	store := session.NewMemoryStore()
	api := backend.New(srv.URL, 2*time.Second)
	bus := events.NewLocalBus()
	a := &app{
		cfg:      config.Config{SessionTTL: time.Hour},
		src:      static,
		reviews:  static.Reviews(),
		registry: catalog.NewRegistry(static, 4),
		carts:    cart.NewService(store),
		recent:   recent.NewList(store, 8),
		authc:    auth.NewClient(api),
		sessions: auth.NewSessions(store, nil),
		admin:    admin.NewService(api, static, bus),
	}
	return &testEnv{router: newRouter(a), api: fa, bus: bus}
}

// do sends a request, carrying the session cookie between calls.
func (e *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Buffer
	if body != "" {
		rd = bytes.NewBufferString(body)
	} else {
		rd = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, "/api/v1"+path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if e.cookie != nil {
		req.AddCookie(e.cookie)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	for _, c := range w.Result().Cookies() {
		if c.Name == httpx.CookieName {
			e.cookie = c
		}
	}
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("invalid json: %v body=%s", err, w.Body.String())
	}
	return v
}

//
// ---------- TESTS ----------
//

func TestHealthz(t *testing.T) {
	env := newTestEnv(t)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusOK || w.Body.String() != "ok" {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
}

// same product twice -> one line, qty accumulates, subtotal 15.00
func TestCart_AddMergesAndPersistsPerSession(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/cart/items", `{"id":"1","title":"Chips","price":"5","qty":2}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	w = env.do(t, http.MethodPost, "/cart/items", `{"id":"1","title":"Chips","price":"5","qty":1}`)
	v := decode[cart.View](t, w)
	if len(v.Items) != 1 || v.Items[0].Qty != 3 || v.Subtotal != "15.00" {
		t.Fatalf("unexpected cart: %+v", v)
	}

	// a fresh visitor has an empty cart
	other := &testEnv{router: env.router}
	v = decode[cart.View](t, other.do(t, http.MethodGet, "/cart", ""))
	if len(v.Items) != 0 {
		t.Fatalf("cart leaked across sessions: %+v", v)
	}

	// removing an unknown id is a no-op
	v = decode[cart.View](t, env.do(t, http.MethodDelete, "/cart/items/nope", ""))
	if v.Count != 3 {
		t.Fatalf("count=%d, want 3", v.Count)
	}
	v = decode[cart.View](t, env.do(t, http.MethodDelete, "/cart", ""))
	if v.Count != 0 || v.Subtotal != "0.00" {
		t.Fatalf("cart not cleared: %+v", v)
	}
}

func TestCart_RejectsBadInput(t *testing.T) {
	env := newTestEnv(t)
	for _, body := range []string{`{`, `{"id":"1","price":"abc"}`, `{"id":"1","price":"-2"}`, `{"price":"1"}`} {
		w := env.do(t, http.MethodPost, "/cart/items", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %s: status=%d, want 400", body, w.Code)
		}
	}

	// quantities past the per-line cap never wrap around
	w := env.do(t, http.MethodPost, "/cart/items", `{"id":"1","price":"1","qty":998}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	for _, body := range []string{`{"id":"1","price":"1","qty":2}`, `{"id":"1","price":"1","qty":9223372036854775807}`} {
		if w = env.do(t, http.MethodPost, "/cart/items", body); w.Code != http.StatusBadRequest {
			t.Fatalf("body %s: status=%d, want 400", body, w.Code)
		}
	}
	v := decode[cart.View](t, env.do(t, http.MethodGet, "/cart", ""))
	if v.Count != 998 {
		t.Fatalf("count=%d, want 998", v.Count)
	}
}

func TestCatalog_SelectPageFeature(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/catalog/category", `{"categoryId":"Salty"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	st := decode[catalog.State](t, w)
	// 6 salty products, 4 per page
	if st.Page != 1 || st.Pages != 2 || st.Total != 6 || len(st.Items) != 4 || st.Featured != 0 {
		t.Fatalf("unexpected state: page=%d pages=%d total=%d items=%d", st.Page, st.Pages, st.Total, len(st.Items))
	}

	st = decode[catalog.State](t, env.do(t, http.MethodGet, "/catalog/page/2", ""))
	if st.Page != 2 || len(st.Items) != 2 {
		t.Fatalf("page 2: page=%d items=%d", st.Page, len(st.Items))
	}

	st = decode[catalog.State](t, env.do(t, http.MethodPost, "/catalog/prev", ""))
	if st.Featured != 1 || st.Direction != -1 {
		t.Fatalf("prev: featured=%d direction=%d", st.Featured, st.Direction)
	}

	if w := env.do(t, http.MethodPost, "/catalog/feature/9", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("feature out of range: status=%d", w.Code)
	}
	if w := env.do(t, http.MethodGet, "/catalog/page/x", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("bad page: status=%d", w.Code)
	}

	// switching category resets the featured index
	st = decode[catalog.State](t, env.do(t, http.MethodPost, "/catalog/category", `{"categoryId":"Sweet"}`))
	if st.Featured != 0 || st.Page != 1 || st.CategoryID != "Sweet" {
		t.Fatalf("after switch: %+v", st)
	}
}

func TestCatalog_FeaturedRecordsRecent(t *testing.T) {
	env := newTestEnv(t)

	if w := env.do(t, http.MethodGet, "/catalog/featured", ""); w.Code != http.StatusNotFound {
		t.Fatalf("nothing loaded: status=%d", w.Code)
	}
	env.do(t, http.MethodPost, "/catalog/category", `{"categoryId":"Drinks"}`)
	env.do(t, http.MethodPost, "/catalog/next", "")

	p := decode[catalog.Product](t, env.do(t, http.MethodGet, "/catalog/featured", ""))
	if p.ID != "drinks-iced-coffee" {
		t.Fatalf("featured=%s", p.ID)
	}
	items := decode[[]recent.Item](t, env.do(t, http.MethodGet, "/recent", ""))
	if len(items) != 1 || items[0].ID != "drinks-iced-coffee" {
		t.Fatalf("recent=%+v", items)
	}
}

func TestCatalog_RefreshOnDataChanged(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodPost, "/catalog/category", `{"categoryId":"Salty"}`)

	w := env.do(t, http.MethodPost, "/catalog/refresh", "")
	if w.Code != http.StatusOK {
		t.Fatalf("refresh status=%d", w.Code)
	}
	if st := decode[catalog.State](t, w); st.CategoryID != "Salty" || len(st.Items) != 4 {
		t.Fatalf("refresh lost state: %+v", st)
	}
}

func TestSearchAndCategories(t *testing.T) {
	env := newTestEnv(t)

	cats := decode[[]catalog.Category](t, env.do(t, http.MethodGet, "/categories", ""))
	if len(cats) != 20 {
		t.Fatalf("categories=%d", len(cats))
	}
	got := decode[[]catalog.Product](t, env.do(t, http.MethodGet, "/search?q=smoothie", ""))
	if len(got) != 2 {
		t.Fatalf("search hits=%d", len(got))
	}
	got = decode[[]catalog.Product](t, env.do(t, http.MethodGet, "/search?q=", ""))
	if len(got) != 0 {
		t.Fatalf("blank search hits=%d", len(got))
	}
	if rv := decode[[]catalog.Review](t, env.do(t, http.MethodGet, "/reviews", "")); len(rv) != 3 {
		t.Fatalf("reviews=%d", len(rv))
	}
}

func TestAuth_LoginMeLogout(t *testing.T) {
	env := newTestEnv(t)

	if w := env.do(t, http.MethodGet, "/auth/me", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous me: status=%d", w.Code)
	}
	w := env.do(t, http.MethodPost, "/auth/login", `{"emailOrUsername":"ana","password":"wrong"}`)
	if w.Code != http.StatusUnauthorized || !strings.Contains(w.Body.String(), "Invalid credentials") {
		t.Fatalf("bad login: status=%d body=%s", w.Code, w.Body.String())
	}
	if w := env.do(t, http.MethodPost, "/auth/login", `{"emailOrUsername":"","password":"x"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("empty login: status=%d", w.Code)
	}

	w = env.do(t, http.MethodPost, "/auth/login", `{"emailOrUsername":"ana","password":"secret"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login status=%d body=%s", w.Code, w.Body.String())
	}
	me := decode[meResponse](t, env.do(t, http.MethodGet, "/auth/me", ""))
	if me.User.Username != "ana" || me.Admin {
		t.Fatalf("me=%+v", me)
	}

	if w := env.do(t, http.MethodPost, "/auth/logout", ""); w.Code != http.StatusNoContent {
		t.Fatalf("logout status=%d", w.Code)
	}
	if w := env.do(t, http.MethodGet, "/auth/me", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("me after logout: status=%d", w.Code)
	}
}

func TestAuth_RegisterLogsIn(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodPost, "/auth/register", `{"username":"ana","email":"ana@example.com","password":"secret"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("register status=%d body=%s", w.Code, w.Body.String())
	}
	if me := decode[meResponse](t, env.do(t, http.MethodGet, "/auth/me", "")); me.User.Username != "ana@example.com" {
		t.Fatalf("me=%+v", me)
	}
}

func TestAdmin_RequiresAdminAndPublishes(t *testing.T) {
	env := newTestEnv(t)
	ch, cancel := env.bus.Subscribe(context.Background())
	defer cancel()

	if w := env.do(t, http.MethodDelete, "/admin/products/p1", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous: status=%d", w.Code)
	}
	env.do(t, http.MethodPost, "/auth/login", `{"emailOrUsername":"ana","password":"secret"}`)
	if w := env.do(t, http.MethodDelete, "/admin/products/p1", ""); w.Code != http.StatusForbidden {
		t.Fatalf("non-admin: status=%d", w.Code)
	}

	env.do(t, http.MethodPost, "/auth/login", `{"emailOrUsername":"boss","password":"secret"}`)
	if w := env.do(t, http.MethodDelete, "/admin/products/p1", ""); w.Code != http.StatusNoContent {
		t.Fatalf("admin delete: status=%d body=%s", w.Code, w.Body.String())
	}
	if len(env.api.deleted) != 1 || env.api.deleted[0] != "p1" {
		t.Fatalf("backend deletes=%v", env.api.deleted)
	}
	select {
	case ev := <-ch:
		if ev.Kind != events.KindDataChanged || ev.ID != "p1" {
			t.Fatalf("event=%+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("no db:changed event")
	}

	w := env.do(t, http.MethodPost, "/admin/products", `{"name":"Trail Mix","price":4.25}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing category: status=%d", w.Code)
	}
	w = env.do(t, http.MethodPost, "/admin/products", `{"name":"Trail Mix","price":4.25,"categoryId":"Nuts"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status=%d body=%s", w.Code, w.Body.String())
	}

	page := decode[catalog.Page](t, env.do(t, http.MethodGet, "/admin/products?q=fries", ""))
	if page.Limit != admin.ListLimit || len(page.Items) != 1 {
		t.Fatalf("admin list: limit=%d items=%d", page.Limit, len(page.Items))
	}
}

func TestShowcase(t *testing.T) {
	env := newTestEnv(t)

	v := decode[motion.Variants](t, env.do(t, http.MethodGet, "/showcase/variants", ""))
	if len(v.Animate.X) != motion.DefaultSamples+1 || v.Animate.Transition.Duration != 2.0 {
		t.Fatalf("arc variants: frames=%d duration=%v", len(v.Animate.X), v.Animate.Transition.Duration)
	}
	v = decode[motion.Variants](t, env.do(t, http.MethodGet, "/showcase/variants?reduced=true", ""))
	if v.Animate.Transition.Duration != 0.3 || len(v.Animate.X) != 0 {
		t.Fatalf("reduced variants: %+v", v.Animate)
	}

	if w := env.do(t, http.MethodGet, "/showcase/ring", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("ring without products: status=%d", w.Code)
	}
	env.do(t, http.MethodPost, "/catalog/category", `{"categoryId":"Salty"}`)
	thumbs := decode[[]motion.Thumb](t, env.do(t, http.MethodGet, "/showcase/ring", ""))
	if len(thumbs) != motion.ThumbCount || thumbs[0].Target != 1 || thumbs[3].Target != 0 {
		t.Fatalf("ring=%+v", thumbs)
	}
}

// every API route is documented, and every schema reference resolves
func TestSwaggerCoversRoutes(t *testing.T) {
	var doc struct {
		BasePath    string                                `json:"basePath"`
		Paths       map[string]map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage           `json:"definitions"`
	}
	raw := docs.SwaggerInfo.ReadDoc()
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("swagger doc is not json: %v", err)
	}

	env := newTestEnv(t)
	for _, rt := range env.router.Routes() {
		path, ok := strings.CutPrefix(rt.Path, doc.BasePath)
		if !ok {
			continue
		}
		parts := strings.Split(path, "/")
		for i, p := range parts {
			if strings.HasPrefix(p, ":") {
				parts[i] = "{" + p[1:] + "}"
			}
		}
		path = strings.Join(parts, "/")
		if _, ok := doc.Paths[path][strings.ToLower(rt.Method)]; !ok {
			t.Fatalf("route %s %s missing from swagger doc", rt.Method, path)
		}
	}

	for _, m := range regexp.MustCompile(`"#/definitions/([^"]+)"`).FindAllStringSubmatch(raw, -1) {
		if _, ok := doc.Definitions[m[1]]; !ok {
			t.Fatalf("undefined schema %s", m[1])
		}
	}
}
