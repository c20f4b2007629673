package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vandana2004/CookingBlog/internal/mocks"
	"github.com/vandana2004/CookingBlog/internal/model"
	"github.com/vandana2004/CookingBlog/internal/service"
	"github.com/vandana2004/CookingBlog/internal/store"
	"github.com/vandana2004/CookingBlog/internal/store/storetest"
	"github.com/vandana2004/CookingBlog/internal/testhelpers"
)

func newService(t *testing.T) (*service.RecipeService, store.Store) {
	t.Helper()
	st := testhelpers.NewSQLiteStore(t)
	return service.NewRecipeService(st, new(mocks.MockAssetHost), t.TempDir()), st
}

func TestHomepage(t *testing.T) {
	svc, st := newService(t)
	ctx := context.Background()
	require.NoError(t, st.CreateCategories(ctx, storetest.SeedCategories()))

	for i := 0; i < 7; i++ {
		storetest.MustCreate(t, st, storetest.Recipe(fmt.Sprintf("North %d", i), service.CategoryNorthIndian))
	}
	storetest.MustCreate(t, st, storetest.Recipe("Dosa", service.CategorySouthIndian))
	storetest.MustCreate(t, st, storetest.Recipe("Poha", service.CategoryCentralIndian))
	storetest.MustCreate(t, st, storetest.Recipe("Rasgulla", service.CategoryEastIndian))
	last := storetest.MustCreate(t, st, storetest.Recipe("Dhokla", service.CategoryWestIndian))

	page, err := svc.Homepage(ctx)
	require.NoError(t, err)

	assert.Len(t, page.Categories, service.HomepageLimit)
	require.Len(t, page.Food.Latest, service.HomepageLimit)
	assert.Equal(t, last.ID, page.Food.Latest[0].ID)
	assert.Len(t, page.Food.North, service.HomepageLimit)
	assert.Len(t, page.Food.South, 1)
	assert.Len(t, page.Food.Central, 1)
	assert.Len(t, page.Food.East, 1)
	assert.Len(t, page.Food.West, 1)
	for _, r := range page.Food.North {
		assert.Equal(t, service.CategoryNorthIndian, r.Category)
	}
}

func TestHomepageEmptyStore(t *testing.T) {
	svc, _ := newService(t)

	page, err := svc.Homepage(context.Background())
	require.NoError(t, err)
	assert.Empty(t, page.Categories)
	assert.Empty(t, page.Food.Latest)
	assert.Empty(t, page.Food.West)
}

func TestListingLimits(t *testing.T) {
	svc, st := newService(t)
	ctx := context.Background()
	for i := 0; i < 25; i++ {
		storetest.MustCreate(t, st, storetest.Recipe(fmt.Sprintf("Taco %d", i), "Mexican"))
	}

	latest, err := svc.LatestRecipes(ctx)
	require.NoError(t, err)
	require.Len(t, latest, service.ListingLimit)
	assert.Equal(t, "Taco 24", latest[0].Name)

	byCategory, err := svc.RecipesByCategory(ctx, "Mexican")
	require.NoError(t, err)
	assert.Len(t, byCategory, service.ListingLimit)

	unknown, err := svc.RecipesByCategory(ctx, "Martian")
	require.NoError(t, err)
	assert.Empty(t, unknown)
}

func TestLatestIsReverseInsertionOrder(t *testing.T) {
	svc, st := newService(t)
	a := storetest.MustCreate(t, st, storetest.Recipe("A", "Thai"))
	b := storetest.MustCreate(t, st, storetest.Recipe("B", "Thai"))
	c := storetest.MustCreate(t, st, storetest.Recipe("C", "Thai"))

	got, err := svc.LatestRecipes(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{c.ID, b.ID, a.ID}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestGetRecipe(t *testing.T) {
	svc, st := newService(t)
	ctx := context.Background()
	created := storetest.MustCreate(t, st, storetest.Recipe("Paella", "Spanish"))

	got, err := svc.GetRecipe(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Paella", got.Name)

	got, err = svc.GetRecipe(ctx, "9999")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = svc.GetRecipe(ctx, "not-an-id")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRandomRecipe(t *testing.T) {
	svc, st := newService(t)
	ctx := context.Background()

	got, err := svc.RandomRecipe(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	ids := map[string]bool{}
	for i := 0; i < 4; i++ {
		r := storetest.MustCreate(t, st, storetest.Recipe(fmt.Sprintf("R%d", i), "Thai"))
		ids[r.ID] = true
	}

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		got, err := svc.RandomRecipe(ctx)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.True(t, ids[got.ID], "unexpected recipe %s", got.ID)
		seen[got.ID] = true
	}
	assert.Len(t, seen, len(ids))
}

func TestSearchRecipes(t *testing.T) {
	svc, st := newService(t)
	ctx := context.Background()
	storetest.MustCreate(t, st, model.Recipe{Name: "Chicken Curry", Description: "Spicy", Category: "Indian"})
	storetest.MustCreate(t, st, model.Recipe{Name: "Fish Tacos", Description: "Curry-free", Category: "Mexican"})
	for i := 0; i < 25; i++ {
		storetest.MustCreate(t, st, model.Recipe{Name: fmt.Sprintf("Curry %d", i), Description: "Mild", Category: "Thai"})
	}

	got, err := svc.SearchRecipes(ctx, "CURRY")
	require.NoError(t, err)
	assert.Len(t, got, 27)

	got, err = svc.SearchRecipes(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadErrorsPropagate(t *testing.T) {
	st := new(mocks.MockStore)
	svc := service.NewRecipeService(st, new(mocks.MockAssetHost), t.TempDir())
	ctx := context.Background()
	boom := errors.New("connection reset")

	st.On("FindCategories", mock.Anything, mock.Anything).Return(nil, boom)
	st.On("FindRecipes", mock.Anything, mock.Anything).Return(nil, boom)
	st.On("CountRecipes", mock.Anything).Return(int64(0), boom)
	st.On("FindRecipe", mock.Anything, "abc").Return(nil, boom)

	_, err := svc.Homepage(ctx)
	assert.ErrorIs(t, err, boom)
	_, err = svc.Categories(ctx)
	assert.ErrorIs(t, err, boom)
	_, err = svc.LatestRecipes(ctx)
	assert.ErrorIs(t, err, boom)
	_, err = svc.RandomRecipe(ctx)
	assert.ErrorIs(t, err, boom)
	_, err = svc.SearchRecipes(ctx, "x")
	assert.ErrorIs(t, err, boom)
	_, err = svc.GetRecipe(ctx, "abc")
	assert.ErrorIs(t, err, boom)
}

func TestQueriesSentToStore(t *testing.T) {
	st := new(mocks.MockStore)
	svc := service.NewRecipeService(st, new(mocks.MockAssetHost), t.TempDir())
	ctx := context.Background()

	st.On("FindRecipes", mock.Anything, store.Query{
		Search: &store.TextSearch{Term: "crème", DiacriticSensitive: true},
	}).Return([]model.Recipe{}, nil).Once()
	st.On("FindRecipes", mock.Anything, store.Query{Category: "Thai", Limit: service.ListingLimit}).
		Return([]model.Recipe{}, nil).Once()
	st.On("FindCategories", mock.Anything, store.Query{Limit: service.ListingLimit}).
		Return([]model.Category{}, nil).Once()

	_, err := svc.SearchRecipes(ctx, "crème")
	require.NoError(t, err)
	_, err = svc.RecipesByCategory(ctx, "Thai")
	require.NoError(t, err)
	_, err = svc.Categories(ctx)
	require.NoError(t, err)
	st.AssertExpectations(t)
}
