package service

import (
	"context"
	"errors"
	"math/rand"

	"github.com/vandana2004/CookingBlog/internal/assets"
	"github.com/vandana2004/CookingBlog/internal/model"
	"github.com/vandana2004/CookingBlog/internal/store"
)

// Page sizes for the homepage sections and the listing pages
const (
	HomepageLimit = 5
	ListingLimit  = 20
)

// Regional categories featured on the homepage
const (
	CategoryNorthIndian   = "North Indian"
	CategorySouthIndian   = "South Indian"
	CategoryCentralIndian = "Central Indian"
	CategoryEastIndian    = "East Indian"
	CategoryWestIndian    = "West Indian"
)

// Food holds the recipe sections shown on the homepage
type Food struct {
	Latest  []model.Recipe
	North   []model.Recipe
	South   []model.Recipe
	Central []model.Recipe
	East    []model.Recipe
	West    []model.Recipe
}

// Homepage is everything the index page displays
type Homepage struct {
	Categories []model.Category
	Food       Food
}

// RecipeService handles recipe operations
type RecipeService struct {
	store      store.Store
	assets     assets.Host
	stagingDir string
}

var _ IRecipeService = (*RecipeService)(nil)

// NewRecipeService creates a new RecipeService instance. Uploaded images are
// staged under stagingDir before they are handed to host.
func NewRecipeService(st store.Store, host assets.Host, stagingDir string) *RecipeService {
	return &RecipeService{
		store:      st,
		assets:     host,
		stagingDir: stagingDir,
	}
}

// Homepage loads the category strip and the latest and regional sections
func (s *RecipeService) Homepage(ctx context.Context) (*Homepage, error) {
	categories, err := s.store.FindCategories(ctx, store.Query{Limit: HomepageLimit})
	if err != nil {
		return nil, err
	}

	latest, err := s.store.FindRecipes(ctx, store.Query{Sort: store.NewestFirst, Limit: HomepageLimit})
	if err != nil {
		return nil, err
	}

	page := &Homepage{Categories: categories, Food: Food{Latest: latest}}
	sections := []struct {
		category string
		dst      *[]model.Recipe
	}{
		{CategoryNorthIndian, &page.Food.North},
		{CategorySouthIndian, &page.Food.South},
		{CategoryCentralIndian, &page.Food.Central},
		{CategoryEastIndian, &page.Food.East},
		{CategoryWestIndian, &page.Food.West},
	}
	for _, sec := range sections {
		recipes, err := s.store.FindRecipes(ctx, store.Query{Category: sec.category, Limit: HomepageLimit})
		if err != nil {
			return nil, err
		}
		*sec.dst = recipes
	}
	return page, nil
}

// Categories lists categories for the category index
func (s *RecipeService) Categories(ctx context.Context) ([]model.Category, error) {
	return s.store.FindCategories(ctx, store.Query{Limit: ListingLimit})
}

// RecipesByCategory lists recipes whose category field equals category
func (s *RecipeService) RecipesByCategory(ctx context.Context, category string) ([]model.Recipe, error) {
	return s.store.FindRecipes(ctx, store.Query{Category: category, Limit: ListingLimit})
}

// GetRecipe returns the recipe with id, or nil when there is none. Ids the
// store cannot parse are treated as missing.
func (s *RecipeService) GetRecipe(ctx context.Context, id string) (*model.Recipe, error) {
	recipe, err := s.store.FindRecipe(ctx, id)
	if errors.Is(err, store.ErrInvalidID) {
		return nil, nil
	}
	return recipe, err
}

// LatestRecipes lists the newest recipes first
func (s *RecipeService) LatestRecipes(ctx context.Context) ([]model.Recipe, error) {
	return s.store.FindRecipes(ctx, store.Query{Sort: store.NewestFirst, Limit: ListingLimit})
}

// RandomRecipe picks one recipe uniformly at random. It returns nil when the
// store is empty.
func (s *RecipeService) RandomRecipe(ctx context.Context) (*model.Recipe, error) {
	n, err := s.store.CountRecipes(ctx)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, nil
	}

	recipes, err := s.store.FindRecipes(ctx, store.Query{Skip: rand.Int63n(n), Limit: 1})
	if err != nil {
		return nil, err
	}
	// a concurrent delete could shrink the collection under us
	if len(recipes) == 0 {
		return nil, nil
	}
	return &recipes[0], nil
}

// SearchRecipes runs a full-text query over recipe names and descriptions.
// Matching ignores case but not diacritics; results are not capped.
func (s *RecipeService) SearchRecipes(ctx context.Context, term string) ([]model.Recipe, error) {
	return s.store.FindRecipes(ctx, store.Query{
		Search: &store.TextSearch{Term: term, DiacriticSensitive: true},
	})
}
