// Package store defines the document store used by the blog and the
// structured queries handlers send to it.
package store

import (
	"context"
	"errors"

	"github.com/vandana2004/CookingBlog/internal/model"
)

// ErrInvalidID is returned when an identifier cannot belong to any document
// in the backing store (e.g. a malformed ObjectID).
var ErrInvalidID = errors.New("invalid identifier")

// SortOrder selects the ordering applied to a query
type SortOrder int

const (
	// Natural leaves ordering to the store
	Natural SortOrder = iota
	// NewestFirst orders by store identifier, descending
	NewestFirst
)

// TextSearch is a full-text predicate over recipe name and description
type TextSearch struct {
	Term               string
	DiacriticSensitive bool
}

// Query is a filter/sort/skip/limit request against one collection.
// Zero values mean "no filter", "natural order", "no skip" and "no limit".
type Query struct {
	Category string
	Search   *TextSearch
	Sort     SortOrder
	Skip     int64
	Limit    int64
}

// Store is the persistence boundary for categories and recipes
type Store interface {
	FindCategories(ctx context.Context, q Query) ([]model.Category, error)
	FindRecipes(ctx context.Context, q Query) ([]model.Recipe, error)
	// FindRecipe returns nil and no error when no recipe has the given id.
	FindRecipe(ctx context.Context, id string) (*model.Recipe, error)
	CountRecipes(ctx context.Context) (int64, error)
	CreateRecipe(ctx context.Context, recipe *model.Recipe) error
	CreateCategories(ctx context.Context, categories []model.Category) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
