package controllers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"tidytask/config"
	dbpkg "tidytask/db"
	"tidytask/router"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// one connection, or every pool checkout would see a fresh :memory: db
	database.DB().SetMaxOpenConns(1)
	dbpkg.Migrate(database)
	t.Cleanup(func() { database.Close() })

	r := gin.New()
	r.LoadHTMLGlob("../templates/*.html")
	r.Use(dbpkg.SetDBtoContext(database))

	var cfg config.Configuration
	cfg.Security.SessionSecret = "test-secret"
	router.Initialize(r, cfg)

	return r, database
}

// browser replays session cookies across requests, one logical client each.
type browser struct {
	t       *testing.T
	engine  *gin.Engine
	cookies map[string]*http.Cookie
}

func newBrowser(t *testing.T, engine *gin.Engine) *browser {
	return &browser{t: t, engine: engine, cookies: map[string]*http.Cookie{}}
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.do(http.MethodGet, path, nil)
}

func (b *browser) post(path string, form url.Values) *httptest.ResponseRecorder {
	if form == nil {
		form = url.Values{}
	}
	return b.do(http.MethodPost, path, form)
}

func (b *browser) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	b.t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, ck := range b.cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	b.engine.ServeHTTP(w, req)

	for _, ck := range w.Result().Cookies() {
		if ck.MaxAge < 0 {
			delete(b.cookies, ck.Name)
		} else {
			b.cookies[ck.Name] = ck
		}
	}
	return w
}

func (b *browser) register(name, email, password string) *httptest.ResponseRecorder {
	return b.post("/register", url.Values{
		"name":     {name},
		"email":    {email},
		"password": {password},
	})
}

func (b *browser) login(email, password string) *httptest.ResponseRecorder {
	return b.post("/login", url.Values{
		"email":    {email},
		"password": {password},
	})
}

func location(w *httptest.ResponseRecorder) string {
	return w.Header().Get("Location")
}
