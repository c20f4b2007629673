package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/vandana2004/CookingBlog/internal/model"
)

// PublicIDPrefix namespaces recipe images on the asset host
const PublicIDPrefix = "recipes/"

// RecipeForm carries the text fields of a recipe submission
type RecipeForm struct {
	Name        string
	Description string
	Source      string
	Email       string
	Ingredients []string
	Category    string
}

// SubmitRecipe stores a new recipe. When image is set it is staged on local
// disk, uploaded to the asset host and its public URL saved on the recipe;
// an upload failure aborts the submission. The staged copy is always removed.
func (s *RecipeService) SubmitRecipe(ctx context.Context, form RecipeForm, image *multipart.FileHeader) (*model.Recipe, error) {
	var imageURL string
	if image == nil {
		log.Printf("[RecipeService] No image uploaded for recipe %q", form.Name)
	} else {
		url, err := s.uploadImage(ctx, image)
		if err != nil {
			return nil, err
		}
		imageURL = url
	}

	ingredients := form.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}
	recipe := &model.Recipe{
		Name:        form.Name,
		Description: form.Description,
		Source:      form.Source,
		Email:       form.Email,
		Ingredients: ingredients,
		Category:    form.Category,
		Image:       imageURL,
	}
	if err := s.store.CreateRecipe(ctx, recipe); err != nil {
		return nil, err
	}

	log.Printf("[RecipeService] Saved recipe %s (%q)", recipe.ID, recipe.Name)
	return recipe, nil
}

func (s *RecipeService) uploadImage(ctx context.Context, image *multipart.FileHeader) (string, error) {
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(image.Filename))

	if err := os.MkdirAll(s.stagingDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create staging directory: %w", err)
	}

	staged := filepath.Join(s.stagingDir, name)
	if err := stageFile(image, staged); err != nil {
		removeStaged(staged)
		return "", err
	}
	defer removeStaged(staged)

	url, err := s.assets.Upload(ctx, staged, PublicIDPrefix+name)
	if err != nil {
		log.Printf("[RecipeService] Image upload failed for %s: %v", name, err)
		return "", err
	}
	return url, nil
}

func stageFile(image *multipart.FileHeader, dst string) error {
	src, err := image.Open()
	if err != nil {
		return fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to stage upload: %w", err)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return fmt.Errorf("failed to stage upload: %w", err)
	}
	return out.Close()
}

// removeStaged deletes a staged file. Failures are logged only so they never
// mask the outcome of the upload.
func removeStaged(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("[RecipeService] Failed to remove staged file %s: %v", path, err)
	}
}
