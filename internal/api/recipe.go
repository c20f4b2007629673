package api

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vandana2004/CookingBlog/internal/middleware"
	"github.com/vandana2004/CookingBlog/internal/service"
	"github.com/vandana2004/CookingBlog/internal/session"
)

const (
	// MessageRecipeAdded is shown after a successful submission
	MessageRecipeAdded = "Recipe has been added."
	// MessageErrorOccurred is shown when a failure carries no message
	MessageErrorOccurred = "Error Occurred"

	submitPath = "/submit-recipe"
)

// CategoryOptions are offered on the submission form
var CategoryOptions = []string{
	"Thai", "American", "Chinese", "Mexican", "Indian", "Spanish",
	service.CategoryNorthIndian,
	service.CategorySouthIndian,
	service.CategoryCentralIndian,
	service.CategoryEastIndian,
	service.CategoryWestIndian,
}

type RecipeHandler struct {
	service service.IRecipeService
}

func NewRecipeHandler(svc service.IRecipeService) *RecipeHandler {
	return &RecipeHandler{service: svc}
}

func (h *RecipeHandler) RegisterRoutes(router gin.IRoutes) {
	router.GET("/", h.Homepage)
	router.GET("/categories", h.ExploreCategories)
	router.GET("/categories/:id", h.ExploreCategoriesByID)
	router.GET("/recipe/:id", h.ExploreRecipe)
	router.POST("/search", h.SearchRecipe)
	router.GET("/explore-latest", h.ExploreLatest)
	router.GET("/explore-random", h.ExploreRandom)
	router.GET("/about", h.About)
	router.GET(submitPath, h.SubmitRecipe)
	router.POST(submitPath, h.SubmitRecipeOnPost)
}

func (h *RecipeHandler) Homepage(c *gin.Context) {
	page, err := h.service.Homepage(c.Request.Context())
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"title":      "Cooking Blog - Home",
		"categories": page.Categories,
		"food":       page.Food,
	})
}

func (h *RecipeHandler) ExploreCategories(c *gin.Context) {
	categories, err := h.service.Categories(c.Request.Context())
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.HTML(http.StatusOK, "categories.html", gin.H{
		"title":      "Cooking Blog - Categories",
		"categories": categories,
	})
}

// ExploreCategoriesByID lists recipes whose category equals the :id segment.
// The segment is a category name, not a Category id.
func (h *RecipeHandler) ExploreCategoriesByID(c *gin.Context) {
	category := c.Param("id")
	recipes, err := h.service.RecipesByCategory(c.Request.Context(), category)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.HTML(http.StatusOK, "categories.html", gin.H{
		"title":        "Cooking Blog - Categories",
		"category":     category,
		"categoryById": recipes,
	})
}

func (h *RecipeHandler) ExploreRecipe(c *gin.Context) {
	recipe, err := h.service.GetRecipe(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.HTML(http.StatusOK, "recipe.html", gin.H{
		"title":  "Cooking Blog - Recipe",
		"recipe": recipe,
	})
}

func (h *RecipeHandler) SearchRecipe(c *gin.Context) {
	term := c.PostForm("searchTerm")
	recipes, err := h.service.SearchRecipes(c.Request.Context(), term)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.HTML(http.StatusOK, "search.html", gin.H{
		"title":      "Cooking Blog - Search",
		"searchTerm": term,
		"recipes":    recipes,
	})
}

func (h *RecipeHandler) ExploreLatest(c *gin.Context) {
	recipes, err := h.service.LatestRecipes(c.Request.Context())
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.HTML(http.StatusOK, "explore-latest.html", gin.H{
		"title":   "Cooking Blog - Explore Latest",
		"recipes": recipes,
	})
}

func (h *RecipeHandler) ExploreRandom(c *gin.Context) {
	recipe, err := h.service.RandomRecipe(c.Request.Context())
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.HTML(http.StatusOK, "explore-random.html", gin.H{
		"title":  "Cooking Blog - Explore Random",
		"recipe": recipe,
	})
}

func (h *RecipeHandler) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", gin.H{
		"title": "Cooking Blog - About",
	})
}

// SubmitRecipe shows the submission form with any pending notifications.
// Showing them consumes them.
func (h *RecipeHandler) SubmitRecipe(c *gin.Context) {
	var infoErrors, infoSubmit []string
	if sess := middleware.GetSession(c); sess != nil {
		ctx := c.Request.Context()
		var err error
		if infoErrors, err = sess.TakeAll(ctx, session.KeyInfoErrors); err != nil {
			_ = c.AbortWithError(http.StatusInternalServerError, err)
			return
		}
		if infoSubmit, err = sess.TakeAll(ctx, session.KeyInfoSubmit); err != nil {
			_ = c.AbortWithError(http.StatusInternalServerError, err)
			return
		}
	}

	c.HTML(http.StatusOK, "submit-recipe.html", gin.H{
		"title":           "Cooking Blog - Submit Recipe",
		"infoErrors":      infoErrors,
		"infoSubmit":      infoSubmit,
		"categoryOptions": CategoryOptions,
	})
}

// SubmitRecipeOnPost saves a submitted recipe. The outcome is reported through
// a session notification and the client is always redirected back to the form.
func (h *RecipeHandler) SubmitRecipeOnPost(c *gin.Context) {
	form := service.RecipeForm{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Source:      c.PostForm("source"),
		Email:       strings.TrimSpace(c.PostForm("email")),
		Ingredients: nonBlank(c.PostFormArray("ingredients")),
		Category:    c.PostForm("category"),
	}

	image, err := c.FormFile("image")
	if err != nil {
		if !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
			h.redirectWithError(c, err)
			return
		}
		image = nil
	}

	if _, err := h.service.SubmitRecipe(c.Request.Context(), form, image); err != nil {
		h.redirectWithError(c, err)
		return
	}

	notify(c, session.KeyInfoSubmit, session.KeyInfoErrors, MessageRecipeAdded)
	c.Redirect(http.StatusFound, submitPath)
}

func (h *RecipeHandler) redirectWithError(c *gin.Context, err error) {
	log.Printf("[RecipeHandler] request_id=%s submission failed: %v", middleware.GetRequestID(c), err)

	msg := err.Error()
	if msg == "" {
		msg = MessageErrorOccurred
	}
	notify(c, session.KeyInfoErrors, session.KeyInfoSubmit, msg)
	c.Redirect(http.StatusFound, submitPath)
}

// notify sets key and drops any pending value under stale, so only the latest
// submission outcome is shown.
func notify(c *gin.Context, key, stale, msg string) {
	sess := middleware.GetSession(c)
	if sess == nil {
		return
	}
	ctx := c.Request.Context()
	if _, err := sess.TakeAll(ctx, stale); err != nil {
		log.Printf("[RecipeHandler] Failed to clear %s notification: %v", stale, err)
	}
	if err := sess.Set(ctx, key, msg); err != nil {
		log.Printf("[RecipeHandler] Failed to set %s notification: %v", key, err)
	}
}

func nonBlank(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
