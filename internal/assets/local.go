package assets

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalURLPrefix is the path LocalHost files are served under
const LocalURLPrefix = "/uploads"

// LocalHost keeps uploads in a directory on disk. It stands in for object
// storage in development.
type LocalHost struct {
	dir string
}

var _ Host = (*LocalHost)(nil)

func NewLocalHost(dir string) *LocalHost {
	return &LocalHost{dir: dir}
}

// Dir returns the directory files are written to
func (h *LocalHost) Dir() string {
	return h.dir
}

func (h *LocalHost) Upload(ctx context.Context, localPath, publicID string) (string, error) {
	clean := path.Clean("/" + publicID)
	if clean == "/" {
		return "", fmt.Errorf("invalid public id %q", publicID)
	}
	dst := filepath.Join(h.dir, filepath.FromSlash(clean))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("failed to create asset directory: %w", err)
	}

	src, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("failed to open staged file: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("failed to create asset: %w", err)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return "", fmt.Errorf("failed to write asset: %w", err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("failed to write asset: %w", err)
	}

	segments := strings.Split(strings.TrimPrefix(clean, "/"), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	publicURL := LocalURLPrefix + "/" + strings.Join(segments, "/")
	log.Printf("[AssetHost] Stored %s at %s", publicID, dst)
	return publicURL, nil
}
