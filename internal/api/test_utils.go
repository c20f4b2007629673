package api

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/vandana2004/CookingBlog/internal/middleware"
	"github.com/vandana2004/CookingBlog/internal/service"
	"github.com/vandana2004/CookingBlog/internal/session"
	"github.com/vandana2004/CookingBlog/internal/store"
	"github.com/vandana2004/CookingBlog/internal/web"
)

const testSessionCookie = "test_sid"

func init() {
	gin.SetMode(gin.TestMode)
}

// SetupTestRouter builds the site router around svc and st with in-memory sessions
func SetupTestRouter(t *testing.T, svc service.IRecipeService, st store.Store) *gin.Engine {
	t.Helper()

	tmpl, err := web.Templates()
	require.NoError(t, err)

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.ErrorHandler())
	router.SetHTMLTemplate(tmpl)

	site := router.Group("/")
	site.Use(middleware.Sessions(session.NewMemoryStore(time.Hour), testSessionCookie, time.Hour, false))
	RegisterRoutes(router, site, NewRecipeHandler(svc), NewHealthHandler(st))
	return router
}

// testClient replays the session cookie between requests like a browser
type testClient struct {
	router  http.Handler
	cookies []*http.Cookie
}

func newTestClient(router http.Handler) *testClient {
	return &testClient{router: router}
}

func (c *testClient) Do(req *http.Request) *httptest.ResponseRecorder {
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}
	rr := httptest.NewRecorder()
	c.router.ServeHTTP(rr, req)
	if set := rr.Result().Cookies(); len(set) > 0 {
		c.cookies = set
	}
	return rr
}

func (c *testClient) Get(path string) *httptest.ResponseRecorder {
	return c.Do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (c *testClient) PostForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.Do(req)
}
