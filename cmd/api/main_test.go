package main

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/vandana2004/CookingBlog/internal/server"
)

func TestAppGraph(t *testing.T) {
	require.NoError(t, fx.ValidateApp(appOptions()))
}

func TestAppServesHealthz(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ENV", "test")
	t.Setenv("ENV_FILE", filepath.Join(dir, "missing.env"))
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("SERVER_PORT", "0")
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(dir, "blog.db"))
	t.Setenv("REDIS_URL", "")
	t.Setenv("S3_BUCKET_NAME", "")
	t.Setenv("LOCAL_ASSET_DIR", filepath.Join(dir, "uploads"))
	t.Setenv("STAGING_DIR", filepath.Join(dir, "staging"))
	t.Setenv("SECRETS_DIR", filepath.Join(dir, "secrets"))

	var srv *server.Server
	app := fxtest.New(t, appOptions(), fx.Populate(&srv))
	app.RequireStart()
	defer app.RequireStop()

	resp, err := http.Get("http://" + srv.Addr() + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
}
