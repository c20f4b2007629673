// Package mongostore implements store.Store on MongoDB collections.
package mongostore

import (
	"context"
	"errors"
	"fmt"

	"github.com/vandana2004/CookingBlog/internal/model"
	"github.com/vandana2004/CookingBlog/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	categoriesCollection = "categories"
	recipesCollection    = "recipes"
	recipeTextIndex      = "recipe_text"
)

// Store is a MongoDB-backed store.Store
type Store struct {
	client     *mongo.Client
	categories *mongo.Collection
	recipes    *mongo.Collection
}

var _ store.Store = (*Store)(nil)

// New binds the store to database dbName and makes sure the recipe text index exists
func New(ctx context.Context, client *mongo.Client, dbName string) (*Store, error) {
	db := client.Database(dbName)
	s := &Store{
		client:     client,
		categories: db.Collection(categoriesCollection),
		recipes:    db.Collection(recipesCollection),
	}

	_, err := s.recipes.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: "text"}, {Key: "description", Value: "text"}},
		Options: options.Index().SetName(recipeTextIndex),
	})
	if err != nil {
		return nil, fmt.Errorf("create text index: %w", err)
	}
	return s, nil
}

func (s *Store) FindCategories(ctx context.Context, q store.Query) ([]model.Category, error) {
	cur, err := s.categories.Find(ctx, bson.D{}, findOptions(q))
	if err != nil {
		return nil, fmt.Errorf("find categories: %w", err)
	}

	var docs []categoryDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	out := make([]model.Category, len(docs))
	for i := range docs {
		out[i] = docs[i].toModel()
	}
	return out, nil
}

func (s *Store) FindRecipes(ctx context.Context, q store.Query) ([]model.Recipe, error) {
	filter := bson.D{}
	if q.Category != "" {
		filter = append(filter, bson.E{Key: "category", Value: q.Category})
	}
	if q.Search != nil {
		filter = append(filter, bson.E{Key: "$text", Value: bson.D{
			{Key: "$search", Value: q.Search.Term},
			{Key: "$diacriticSensitive", Value: q.Search.DiacriticSensitive},
		}})
	}

	cur, err := s.recipes.Find(ctx, filter, findOptions(q))
	if err != nil {
		return nil, fmt.Errorf("find recipes: %w", err)
	}

	var docs []recipeDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode recipes: %w", err)
	}
	out := make([]model.Recipe, len(docs))
	for i := range docs {
		out[i] = docs[i].toModel()
	}
	return out, nil
}

func (s *Store) FindRecipe(ctx context.Context, id string) (*model.Recipe, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, store.ErrInvalidID
	}

	var doc recipeDoc
	err = s.recipes.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find recipe %s: %w", id, err)
	}
	m := doc.toModel()
	return &m, nil
}

func (s *Store) CountRecipes(ctx context.Context) (int64, error) {
	n, err := s.recipes.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count recipes: %w", err)
	}
	return n, nil
}

func (s *Store) CreateRecipe(ctx context.Context, recipe *model.Recipe) error {
	if err := recipe.Validate(); err != nil {
		return err
	}
	res, err := s.recipes.InsertOne(ctx, recipeDocFromModel(recipe))
	if err != nil {
		return fmt.Errorf("insert recipe: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		recipe.ID = oid.Hex()
	}
	return nil
}

func (s *Store) CreateCategories(ctx context.Context, categories []model.Category) error {
	if len(categories) == 0 {
		return nil
	}
	docs := make([]interface{}, len(categories))
	for i := range categories {
		if err := categories[i].Validate(); err != nil {
			return err
		}
		docs[i] = categoryDoc{Name: categories[i].Name, Image: categories[i].Image}
	}

	res, err := s.categories.InsertMany(ctx, docs)
	if err != nil {
		return fmt.Errorf("insert categories: %w", err)
	}
	for i, id := range res.InsertedIDs {
		if oid, ok := id.(primitive.ObjectID); ok {
			categories[i].ID = oid.Hex()
		}
	}
	return nil
}

// Reset deletes every recipe and category
func (s *Store) Reset(ctx context.Context) error {
	if _, err := s.recipes.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("reset recipes: %w", err)
	}
	if _, err := s.categories.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("reset categories: %w", err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// findOptions translates ordering and paging. ObjectIDs lead with their
// creation timestamp, so sorting on _id descending is newest-first.
func findOptions(q store.Query) *options.FindOptions {
	opts := options.Find()
	if q.Sort == store.NewestFirst {
		opts.SetSort(bson.D{{Key: "_id", Value: -1}})
	}
	if q.Skip > 0 {
		opts.SetSkip(q.Skip)
	}
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}
	return opts
}
