package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vandana2004/CookingBlog/internal/mocks"
	"github.com/vandana2004/CookingBlog/internal/service"
	"github.com/vandana2004/CookingBlog/internal/store"
	"github.com/vandana2004/CookingBlog/internal/testhelpers"
)

type submitFlow struct {
	client  *testClient
	store   store.Store
	host    *mocks.MockAssetHost
	staging string
}

func newSubmitFlow(t *testing.T) *submitFlow {
	st := testhelpers.NewSQLiteStore(t)
	host := new(mocks.MockAssetHost)
	staging := filepath.Join(t.TempDir(), "uploads")
	svc := service.NewRecipeService(st, host, staging)
	return &submitFlow{
		client:  newTestClient(SetupTestRouter(t, svc, st)),
		store:   st,
		host:    host,
		staging: staging,
	}
}

func (f *submitFlow) submit(t *testing.T, fields map[string][]string, files ...testhelpers.MultipartFile) *httptest.ResponseRecorder {
	body, contentType := testhelpers.NewMultipartBody(t, fields, files...)
	req := httptest.NewRequest(http.MethodPost, "/submit-recipe", body)
	req.Header.Set("Content-Type", contentType)
	w := f.client.Do(req)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/submit-recipe", w.Header().Get("Location"))
	return w
}

func recipeFields(name string) map[string][]string {
	return map[string][]string{
		"name":        {name},
		"description": {"Tasty"},
		"source":      {"me"},
		"ingredients": {"egg", "salt"},
		"category":    {"Spanish"},
	}
}

func TestSubmitFlowWithoutImage(t *testing.T) {
	f := newSubmitFlow(t)
	ctx := context.Background()

	f.submit(t, recipeFields("Tortilla"))

	recipes, err := f.store.FindRecipes(ctx, store.Query{})
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Tortilla", recipes[0].Name)
	assert.Equal(t, "", recipes[0].Image)
	assert.Equal(t, []string{"egg", "salt"}, recipes[0].Ingredients)
	f.host.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitFlowWithImage(t *testing.T) {
	f := newSubmitFlow(t)
	ctx := context.Background()
	f.host.On("Upload", mock.Anything, mock.Anything, mock.Anything).
		Return("https://cdn.example.com/recipes/tortilla.jpg", nil)

	f.submit(t, recipeFields("Tortilla"), testhelpers.MultipartFile{
		Field: "image", Filename: "tortilla.jpg", Content: []byte("jpeg"),
	})

	recipes, err := f.store.FindRecipes(ctx, store.Query{})
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "https://cdn.example.com/recipes/tortilla.jpg", recipes[0].Image)
	assert.Empty(t, testhelpers.DirEntries(t, f.staging))

	w := f.client.Get("/submit-recipe")
	assert.Contains(t, w.Body.String(), MessageRecipeAdded)
}

func TestSubmitFlowUploadFailure(t *testing.T) {
	f := newSubmitFlow(t)
	ctx := context.Background()
	f.host.On("Upload", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("upload quota exceeded"))

	f.submit(t, recipeFields("Tortilla"), testhelpers.MultipartFile{
		Field: "image", Filename: "tortilla.jpg", Content: []byte("jpeg"),
	})

	n, err := f.store.CountRecipes(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, testhelpers.DirEntries(t, f.staging))

	w := f.client.Get("/submit-recipe")
	assert.Contains(t, w.Body.String(), "upload quota exceeded")
}

func TestSubmitFlowLatestStatusWins(t *testing.T) {
	f := newSubmitFlow(t)

	f.submit(t, recipeFields("Gazpacho"))
	f.submit(t, recipeFields(""))

	w := f.client.Get("/submit-recipe")
	body := w.Body.String()
	assert.Contains(t, body, "name is required")
	assert.NotContains(t, body, MessageRecipeAdded)

	w = f.client.Get("/submit-recipe")
	body = w.Body.String()
	assert.NotContains(t, body, "name is required")
	assert.NotContains(t, body, MessageRecipeAdded)

	f.submit(t, recipeFields(""))
	f.submit(t, recipeFields("Churros"))

	w = f.client.Get("/submit-recipe")
	body = w.Body.String()
	assert.Contains(t, body, MessageRecipeAdded)
	assert.NotContains(t, body, "name is required")
}

func TestSubmitFlowSessionsAreSeparate(t *testing.T) {
	f := newSubmitFlow(t)
	f.submit(t, recipeFields("Flan"))

	other := newTestClient(f.client.router)
	w := other.Get("/submit-recipe")
	assert.NotContains(t, w.Body.String(), MessageRecipeAdded)

	w = f.client.Get("/submit-recipe")
	assert.Contains(t, w.Body.String(), MessageRecipeAdded)
}

func TestLatestAfterSubmissions(t *testing.T) {
	f := newSubmitFlow(t)
	for _, name := range []string{"Alpha", "Bravo", "Charlie"} {
		f.submit(t, recipeFields(name))
	}

	recipes, err := f.store.FindRecipes(context.Background(), store.Query{Sort: store.NewestFirst})
	require.NoError(t, err)
	require.Len(t, recipes, 3)
	assert.Equal(t, []string{"Charlie", "Bravo", "Alpha"}, []string{recipes[0].Name, recipes[1].Name, recipes[2].Name})
}
