package service

import (
	"context"
	"mime/multipart"

	"github.com/vandana2004/CookingBlog/internal/model"
)

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	Homepage(ctx context.Context) (*Homepage, error)
	Categories(ctx context.Context) ([]model.Category, error)
	RecipesByCategory(ctx context.Context, category string) ([]model.Recipe, error)
	GetRecipe(ctx context.Context, id string) (*model.Recipe, error)
	LatestRecipes(ctx context.Context) ([]model.Recipe, error)
	RandomRecipe(ctx context.Context) (*model.Recipe, error)
	SearchRecipes(ctx context.Context, term string) ([]model.Recipe, error)
	SubmitRecipe(ctx context.Context, form RecipeForm, image *multipart.FileHeader) (*model.Recipe, error)
}
