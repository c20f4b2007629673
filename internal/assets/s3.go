package assets

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"

	"github.com/vandana2004/CookingBlog/config"
)

// ObjectPutter is the part of the S3 client the host needs
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Host uploads recipe images to an S3 bucket
type S3Host struct {
	client  ObjectPutter
	bucket  string
	baseURL string
}

var _ Host = (*S3Host)(nil)

// NewS3Host creates a host for bucket. Public URLs are built from baseURL
// (e.g. a CDN origin) when set, otherwise from the bucket's virtual-host URL.
func NewS3Host(client ObjectPutter, bucket, baseURL string) *S3Host {
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.amazonaws.com", bucket)
	}
	return &S3Host{
		client:  client,
		bucket:  bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// NewS3HostFromConfig wires an S3Host from application config
func NewS3HostFromConfig(s3cfg *config.S3Config, cfg *config.Config) *S3Host {
	return NewS3Host(s3cfg.Client, s3cfg.BucketName, cfg.AssetBaseURL)
}

// Upload puts the file at localPath under key publicID
func (h *S3Host) Upload(ctx context.Context, localPath, publicID string) (string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("failed to open staged file: %w", err)
	}
	defer f.Close()

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return "", fmt.Errorf("failed to detect content type: %w", err)
	}
	if _, err := f.Seek(0, 0); err != nil {
		return "", fmt.Errorf("failed to rewind staged file: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat staged file: %w", err)
	}

	_, err = h.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(h.bucket),
		Key:           aws.String(publicID),
		Body:          f,
		ContentLength: aws.Int64(info.Size()),
		ContentType:   aws.String(mtype.String()),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	publicURL := h.URL(publicID)
	log.Printf("[AssetHost] Uploaded %s to %s", publicID, publicURL)
	return publicURL, nil
}

// URL returns the public URL for key
func (h *S3Host) URL(key string) string {
	segments := strings.Split(key, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return h.baseURL + "/" + strings.Join(segments, "/")
}
