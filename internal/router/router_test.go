package router

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vandana2004/CookingBlog/config"
	"github.com/vandana2004/CookingBlog/internal/api"
	"github.com/vandana2004/CookingBlog/internal/middleware"
	"github.com/vandana2004/CookingBlog/internal/mocks"
	"github.com/vandana2004/CookingBlog/internal/session"
)

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		SessionCookie: "cooking_blog_sid",
		SessionTTL:    time.Hour,
		LocalAssetDir: t.TempDir(),
	}
}

func TestSetupRouter(t *testing.T) {
	t.Setenv("ENV", "test")
	svc := new(mocks.MockRecipeService)
	st := new(mocks.MockStore)
	st.On("Ping", mock.Anything).Return(nil)
	cfg := testConfig(t)
	require.NoError(t, os.MkdirAll(filepath.Join(cfg.LocalAssetDir, "recipes"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.LocalAssetDir, "recipes", "1-cake.jpg"), []byte("jpeg"), 0o600))

	r, err := SetupRouter(cfg, session.NewMemoryStore(time.Hour), api.NewRecipeHandler(svc), api.NewHealthHandler(st))
	require.NoError(t, err)

	t.Run("About", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/about", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
		assert.Contains(t, w.Header().Get("Set-Cookie"), "cooking_blog_sid=")
	})

	t.Run("HealthzHasNoSession", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Set-Cookie"))
	})

	t.Run("Static", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/static/css/main.css", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/css")
	})

	t.Run("LocalUploads", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/uploads/recipes/1-cake.jpg", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "jpeg", w.Body.String())
	})

	t.Run("UnknownRoute", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/recipes", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
