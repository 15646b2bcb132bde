package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

type ObjectStorageMock struct {
	mock.Mock
}

func NewObjectStorageMock() *ObjectStorageMock {
	return &ObjectStorageMock{}
}

func (m *ObjectStorageMock) Upload(ctx context.Context, folder string, fileName string, r io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, folder, fileName, r, size, contentType)
	return args.String(0), args.Error(1)
}

func (m *ObjectStorageMock) Delete(ctx context.Context, objectPath string) error {
	args := m.Called(ctx, objectPath)
	return args.Error(0)
}

// PublicURL 不經過 mock 設定，固定回傳可預期的 URL
func (m *ObjectStorageMock) PublicURL(objectPath string) string {
	return "http://storage.test/uploads/" + objectPath
}
