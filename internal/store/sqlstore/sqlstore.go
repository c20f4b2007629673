// Package sqlstore implements store.Store on top of gorm (postgres or sqlite).
package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vandana2004/CookingBlog/internal/model"
	"github.com/vandana2004/CookingBlog/internal/store"
	"gorm.io/gorm"
)

// Store is a gorm-backed store.Store
type Store struct {
	db *gorm.DB
}

var _ store.Store = (*Store)(nil)

// New wraps db and makes sure the categories and recipes tables exist
func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&categoryRow{}, &recipeRow{}); err != nil {
		return nil, fmt.Errorf("create tables: %w", err)
	}
	return &Store{db: db}, nil
}

// DB exposes the underlying connection
func (s *Store) DB() *gorm.DB {
	return s.db
}

func (s *Store) FindCategories(ctx context.Context, q store.Query) ([]model.Category, error) {
	var rows []categoryRow
	if err := s.apply(s.db.WithContext(ctx), q).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("find categories: %w", err)
	}
	out := make([]model.Category, len(rows))
	for i := range rows {
		out[i] = rows[i].toModel()
	}
	return out, nil
}

func (s *Store) FindRecipes(ctx context.Context, q store.Query) ([]model.Recipe, error) {
	tx := s.db.WithContext(ctx)
	if q.Category != "" {
		tx = tx.Where("category = ?", q.Category)
	}
	if q.Search != nil {
		tx = s.textSearch(tx, q.Search)
	}

	var rows []recipeRow
	if err := s.apply(tx, q).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("find recipes: %w", err)
	}
	out := make([]model.Recipe, len(rows))
	for i := range rows {
		out[i] = rows[i].toModel()
	}
	return out, nil
}

func (s *Store) FindRecipe(ctx context.Context, id string) (*model.Recipe, error) {
	n, ok := parseID(id)
	if !ok {
		return nil, store.ErrInvalidID
	}

	var row recipeRow
	err := s.db.WithContext(ctx).First(&row, n).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find recipe %s: %w", id, err)
	}
	m := row.toModel()
	return &m, nil
}

func (s *Store) CountRecipes(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&recipeRow{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count recipes: %w", err)
	}
	return n, nil
}

func (s *Store) CreateRecipe(ctx context.Context, recipe *model.Recipe) error {
	row := recipeRowFromModel(recipe)
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}
	recipe.ID = formatID(row.ID)
	return nil
}

func (s *Store) CreateCategories(ctx context.Context, categories []model.Category) error {
	if len(categories) == 0 {
		return nil
	}
	rows := make([]categoryRow, len(categories))
	for i, c := range categories {
		rows[i] = categoryRow{Name: c.Name, Image: c.Image}
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
		for i := range rows {
			categories[i].ID = formatID(rows[i].ID)
		}
		return nil
	})
}

// Reset deletes every recipe and category
func (s *Store) Reset(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&recipeRow{}).Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&categoryRow{}).Error
	})
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Store) Close(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// apply adds ordering and paging; primary keys are auto-increment so id
// order is insertion order.
func (s *Store) apply(tx *gorm.DB, q store.Query) *gorm.DB {
	if q.Sort == store.NewestFirst {
		tx = tx.Order("id DESC")
	} else {
		tx = tx.Order("id ASC")
	}
	if q.Skip > 0 {
		tx = tx.Offset(int(q.Skip))
	}
	if q.Limit > 0 {
		tx = tx.Limit(int(q.Limit))
	}
	return tx
}

// textSearch matches name and description case-insensitively, any word of
// the term being enough, like a text index query. Accents are never folded:
// postgres uses the 'simple' configuration without unaccent and the LIKE
// fallback only lowercases ASCII, so DiacriticSensitive is always honored as true.
func (s *Store) textSearch(tx *gorm.DB, ts *store.TextSearch) *gorm.DB {
	words := strings.Fields(ts.Term)
	if len(words) == 0 {
		return tx.Where("1 = 0")
	}

	args := make([]interface{}, 0, 2*len(words))
	if s.db.Dialector.Name() == "postgres" {
		queries := make([]string, len(words))
		for i, w := range words {
			queries[i] = "plainto_tsquery('simple', ?)"
			args = append(args, w)
		}
		return tx.Where(
			"to_tsvector('simple', coalesce(name, '') || ' ' || coalesce(description, '')) @@ ("+strings.Join(queries, " || ")+")",
			args...,
		)
	}

	clauses := make([]string, len(words))
	for i, w := range words {
		like := "%" + strings.ToLower(w) + "%"
		clauses[i] = "(LOWER(name) LIKE ? OR LOWER(description) LIKE ?)"
		args = append(args, like, like)
	}
	return tx.Where(strings.Join(clauses, " OR "), args...)
}
