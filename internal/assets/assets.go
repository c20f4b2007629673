// Package assets uploads staged files to remote object storage.
package assets

import "context"

// Host stores a local file under publicID and returns its public URL.
// Uploading to an existing publicID replaces the stored object.
type Host interface {
	Upload(ctx context.Context, localPath, publicID string) (string, error)
}
