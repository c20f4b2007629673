// Package web holds the HTML templates and static assets of the site.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/vandana2004/CookingBlog/internal/assets"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// ImagePath is where bundled images are served from
const ImagePath = "/static/img/"

const placeholderImage = ImagePath + "no-image.svg"

// Templates parses every page template along with the shared layout partials.
// Pages are addressed by file name, e.g. "index.html".
func Templates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"imageURL":    ImageURL,
		"currentYear": func() int { return time.Now().Year() },
	}).ParseFS(templateFS, "templates/*.html")
}

// Static serves the bundled css and images
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

// ImageURL resolves a stored image reference. Uploaded images are absolute
// URLs on the asset host or paths under the local upload prefix; seeded ones
// are file names of bundled images.
func ImageURL(image string) string {
	switch {
	case image == "":
		return placeholderImage
	case strings.HasPrefix(image, "http://"), strings.HasPrefix(image, "https://"),
		strings.HasPrefix(image, assets.LocalURLPrefix+"/"):
		return image
	default:
		return ImagePath + strings.TrimLeft(image, "/")
	}
}
