// Package storetest holds behavior every store.Store implementation must share.
package storetest

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vandana2004/CookingBlog/internal/model"
	"github.com/vandana2004/CookingBlog/internal/store"
)

// Run exercises newStore against the store contract. newStore must return an
// empty store on each call.
func Run(t *testing.T, newStore func(t *testing.T) store.Store) {
	t.Run("NewestFirstIsReverseInsertionOrder", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		a := MustCreate(t, s, Recipe("A", "Thai"))
		b := MustCreate(t, s, Recipe("B", "Thai"))
		c := MustCreate(t, s, Recipe("C", "Thai"))

		got, err := s.FindRecipes(ctx, store.Query{Sort: store.NewestFirst, Limit: 20})
		require.NoError(t, err)
		assert.Equal(t, []string{c.ID, b.ID, a.ID}, ids(got))
	})

	t.Run("LimitAndSkip", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		for i := 0; i < 7; i++ {
			MustCreate(t, s, Recipe(fmt.Sprintf("R%d", i), "Mexican"))
		}

		got, err := s.FindRecipes(ctx, store.Query{Limit: 5})
		require.NoError(t, err)
		assert.Len(t, got, 5)

		got, err = s.FindRecipes(ctx, store.Query{Skip: 6, Limit: 1})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "R6", got[0].Name)

		n, err := s.CountRecipes(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(7), n)
	})

	t.Run("CategoryFilter", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		MustCreate(t, s, Recipe("Tom Yum", "Thai"))
		MustCreate(t, s, Recipe("Burger", "American"))
		MustCreate(t, s, Recipe("Green Curry", "Thai"))

		got, err := s.FindRecipes(ctx, store.Query{Category: "Thai", Limit: 20})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Tom Yum", "Green Curry"}, names(got))

		got, err = s.FindRecipes(ctx, store.Query{Category: "Klingon", Limit: 20})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("FindRecipe", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		created := MustCreate(t, s, model.Recipe{
			Name:        "Chocolate Cake",
			Description: "Rich and moist",
			Source:      "grandma",
			Email:       "cook@example.com",
			Ingredients: []string{"flour", "cocoa", "eggs"},
			Category:    "American",
			Image:       "https://cdn.example.com/cake.jpg",
		})

		got, err := s.FindRecipe(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, created, *got)

		_, err = s.FindRecipe(ctx, "definitely not an id")
		assert.True(t, errors.Is(err, store.ErrInvalidID))
	})

	t.Run("CreateRecipeValidates", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		err := s.CreateRecipe(ctx, &model.Recipe{Category: "Thai"})
		require.Error(t, err)

		var verr *model.ValidationError
		assert.True(t, errors.As(err, &verr))

		n, err := s.CountRecipes(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("Categories", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		cats := SeedCategories()
		require.NoError(t, s.CreateCategories(ctx, cats))
		for _, c := range cats {
			assert.NotEmpty(t, c.ID)
		}

		got, err := s.FindCategories(ctx, store.Query{Limit: 5})
		require.NoError(t, err)
		assert.Len(t, got, 5)

		got, err = s.FindCategories(ctx, store.Query{Limit: 20})
		require.NoError(t, err)
		assert.Len(t, got, len(cats))
	})

	t.Run("TextSearch", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		MustCreate(t, s, model.Recipe{Name: "Crème brûlée", Description: "Custard with caramel", Category: "Spanish"})
		MustCreate(t, s, model.Recipe{Name: "Chicken Curry", Description: "Spicy and creamy", Category: "Indian"})
		MustCreate(t, s, model.Recipe{Name: "Pad Thai", Description: "Noodles", Category: "Thai"})

		search := func(term string) []string {
			got, err := s.FindRecipes(ctx, store.Query{Search: &store.TextSearch{Term: term, DiacriticSensitive: true}})
			require.NoError(t, err)
			return names(got)
		}

		assert.Equal(t, []string{"Chicken Curry"}, search("curry"))
		assert.ElementsMatch(t, []string{"Chicken Curry", "Pad Thai"}, search("CURRY noodles"))
		assert.Equal(t, []string{"Crème brûlée"}, search("crème"))
		assert.Empty(t, search("creme"))
	})
}

// Recipe builds a valid recipe in category
func Recipe(name, category string) model.Recipe {
	return model.Recipe{
		Name:        name,
		Description: name + " description",
		Ingredients: []string{"salt"},
		Category:    category,
	}
}

// MustCreate inserts r and returns it with its assigned id
func MustCreate(t *testing.T, s store.Store, r model.Recipe) model.Recipe {
	t.Helper()
	if r.Ingredients == nil {
		r.Ingredients = []string{}
	}
	require.NoError(t, s.CreateRecipe(context.Background(), &r))
	require.NotEmpty(t, r.ID)
	return r
}

// SeedCategories returns the default category set
func SeedCategories() []model.Category {
	return []model.Category{
		{Name: "Thai", Image: "thai-food.jpg"},
		{Name: "American", Image: "american-food.jpg"},
		{Name: "Chinese", Image: "chinese-food.jpg"},
		{Name: "Mexican", Image: "mexican-food.jpg"},
		{Name: "Indian", Image: "indian-food.jpg"},
		{Name: "Spanish", Image: "spanish-food.jpg"},
	}
}

func ids(rs []model.Recipe) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.ID
	}
	return out
}

func names(rs []model.Recipe) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Name
	}
	return out
}
