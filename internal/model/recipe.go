package model

// Recipe is a submitted recipe. ID is assigned by the store on insert and
// orders recipes by insertion time.
type Recipe struct {
	ID          string   `json:"id"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Source      string   `json:"source,omitempty"`
	Email       string   `json:"email,omitempty" validate:"omitempty,email"`
	Ingredients []string `json:"ingredients"`
	// Category loosely references Category.Name; nothing enforces that it exists.
	Category string `json:"category"`
	Image    string `json:"image"`
}

// Category groups recipes on the listing pages
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name" validate:"required"`
	Image string `json:"image"`
}

// Validate checks the recipe against its schema
func (r *Recipe) Validate() error {
	return validateStruct("Recipe", r)
}

// Validate checks the category against its schema
func (c *Category) Validate() error {
	return validateStruct("Category", c)
}
