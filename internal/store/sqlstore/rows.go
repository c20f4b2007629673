package sqlstore

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/vandana2004/CookingBlog/internal/model"
	"gorm.io/gorm"
)

// StringList stores an ordered list of lines as a JSON array
type StringList []string

// Value implements the driver.Valuer interface
func (a StringList) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface
func (a *StringList) Scan(value interface{}) error {
	if value == nil {
		*a = StringList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported ingredients column type %T", value)
	}

	return json.Unmarshal(bytes, a)
}

type categoryRow struct {
	ID    uint   `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"size:255;not null"`
	Image string `gorm:"size:255"`
}

func (categoryRow) TableName() string { return "categories" }

type recipeRow struct {
	ID          uint       `gorm:"primaryKey;autoIncrement"`
	Name        string     `gorm:"size:255;not null"`
	Description string     `gorm:"type:text;not null"`
	Source      string     `gorm:"size:255"`
	Email       string     `gorm:"size:255"`
	Ingredients StringList `gorm:"type:text;not null"`
	Category    string     `gorm:"size:100;index"`
	Image       string     `gorm:"size:1024"`
}

func (recipeRow) TableName() string { return "recipes" }

// BeforeCreate enforces the recipe schema on every insert path
func (r *recipeRow) BeforeCreate(tx *gorm.DB) error {
	m := r.toModel()
	return m.Validate()
}

// BeforeCreate enforces the category schema on every insert path
func (c *categoryRow) BeforeCreate(tx *gorm.DB) error {
	m := c.toModel()
	return m.Validate()
}

func (r *recipeRow) toModel() model.Recipe {
	ingredients := []string(r.Ingredients)
	if ingredients == nil {
		ingredients = []string{}
	}
	return model.Recipe{
		ID:          formatID(r.ID),
		Name:        r.Name,
		Description: r.Description,
		Source:      r.Source,
		Email:       r.Email,
		Ingredients: ingredients,
		Category:    r.Category,
		Image:       r.Image,
	}
}

func (c *categoryRow) toModel() model.Category {
	return model.Category{ID: formatID(c.ID), Name: c.Name, Image: c.Image}
}

func recipeRowFromModel(r *model.Recipe) recipeRow {
	return recipeRow{
		Name:        r.Name,
		Description: r.Description,
		Source:      r.Source,
		Email:       r.Email,
		Ingredients: StringList(r.Ingredients),
		Category:    r.Category,
		Image:       r.Image,
	}
}

func formatID(id uint) string {
	if id == 0 {
		return ""
	}
	return strconv.FormatUint(uint64(id), 10)
}

func parseID(id string) (uint, bool) {
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}
