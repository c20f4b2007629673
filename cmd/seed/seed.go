package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log"

	"github.com/vandana2004/CookingBlog/internal/model"
	"github.com/vandana2004/CookingBlog/internal/store"
)

//go:embed recipes.json
var recipesJSON []byte

// DefaultCategories are the categories the site ships with
var DefaultCategories = []model.Category{
	{Name: "Thai", Image: "thai-food.jpg"},
	{Name: "American", Image: "american-food.jpg"},
	{Name: "Chinese", Image: "chinese-food.jpg"},
	{Name: "Mexican", Image: "mexican-food.jpg"},
	{Name: "Indian", Image: "indian-food.jpg"},
	{Name: "Spanish", Image: "spanish-food.jpg"},
}

// RecipeData is one entry of the bundled sample recipes
type RecipeData struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Source      string   `json:"source"`
	Email       string   `json:"email"`
	Ingredients []string `json:"ingredients"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
}

type resetter interface {
	Reset(ctx context.Context) error
}

// Options control what seed writes
type Options struct {
	Reset   bool
	Recipes bool
}

// Result counts what seed inserted
type Result struct {
	Categories int
	Recipes    int
}

func loadSampleRecipes() ([]RecipeData, error) {
	var data []RecipeData
	if err := json.Unmarshal(recipesJSON, &data); err != nil {
		return nil, fmt.Errorf("failed to parse sample recipes: %w", err)
	}
	return data, nil
}

// Seed inserts the default categories and, when asked, the sample recipes.
// Collections that already hold data are left alone unless opts.Reset is set.
func Seed(ctx context.Context, st store.Store, opts Options) (Result, error) {
	var res Result

	if opts.Reset {
		r, ok := st.(resetter)
		if !ok {
			return res, fmt.Errorf("store %T cannot be reset", st)
		}
		log.Printf("[Seed] Clearing recipes and categories")
		if err := r.Reset(ctx); err != nil {
			return res, fmt.Errorf("failed to reset store: %w", err)
		}
	}

	existing, err := st.FindCategories(ctx, store.Query{Limit: 1})
	if err != nil {
		return res, err
	}
	if len(existing) == 0 {
		categories := make([]model.Category, len(DefaultCategories))
		copy(categories, DefaultCategories)
		if err := st.CreateCategories(ctx, categories); err != nil {
			return res, fmt.Errorf("failed to insert categories: %w", err)
		}
		res.Categories = len(categories)
	} else {
		log.Printf("[Seed] Categories already present, skipping")
	}

	if !opts.Recipes {
		return res, nil
	}

	n, err := st.CountRecipes(ctx)
	if err != nil {
		return res, err
	}
	if n > 0 {
		log.Printf("[Seed] %d recipes already present, skipping samples", n)
		return res, nil
	}

	samples, err := loadSampleRecipes()
	if err != nil {
		return res, err
	}
	for _, d := range samples {
		recipe := &model.Recipe{
			Name:        d.Name,
			Description: d.Description,
			Source:      d.Source,
			Email:       d.Email,
			Ingredients: d.Ingredients,
			Category:    d.Category,
			Image:       d.Image,
		}
		if err := st.CreateRecipe(ctx, recipe); err != nil {
			return res, fmt.Errorf("failed to insert recipe %q: %w", d.Name, err)
		}
		res.Recipes++
	}
	return res, nil
}
