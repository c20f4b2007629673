package mocks

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/mock"
)

// MockAssetHost is a mock implementation of assets.Host
type MockAssetHost struct {
	mock.Mock

	// Staged records whether the local file existed when Upload was called
	Staged []bool
}

func (m *MockAssetHost) Upload(ctx context.Context, localPath, publicID string) (string, error) {
	_, err := os.Stat(localPath)
	m.Staged = append(m.Staged, err == nil)
	args := m.Called(ctx, localPath, publicID)
	return args.String(0), args.Error(1)
}

// MockObjectPutter is a mock of the S3 PutObject call
type MockObjectPutter struct {
	mock.Mock
}

func (m *MockObjectPutter) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.PutObjectOutput), args.Error(1)
}
