package mongostore

import (
	"github.com/vandana2004/CookingBlog/internal/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type categoryDoc struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Name  string             `bson:"name"`
	Image string             `bson:"image"`
}

type recipeDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Source      string             `bson:"source,omitempty"`
	Email       string             `bson:"email,omitempty"`
	Ingredients []string           `bson:"ingredients"`
	Category    string             `bson:"category"`
	Image       string             `bson:"image"`
}

func (d *recipeDoc) toModel() model.Recipe {
	ingredients := d.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}
	return model.Recipe{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		Source:      d.Source,
		Email:       d.Email,
		Ingredients: ingredients,
		Category:    d.Category,
		Image:       d.Image,
	}
}

func (d *categoryDoc) toModel() model.Category {
	return model.Category{ID: d.ID.Hex(), Name: d.Name, Image: d.Image}
}

func recipeDocFromModel(r *model.Recipe) recipeDoc {
	ingredients := r.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}
	return recipeDoc{
		Name:        r.Name,
		Description: r.Description,
		Source:      r.Source,
		Email:       r.Email,
		Ingredients: ingredients,
		Category:    r.Category,
		Image:       r.Image,
	}
}
