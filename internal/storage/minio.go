package storage

import (
	"context"
	"event-voting/config"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// 物件路徑前綴
const (
	FolderCategoryIcons   = "categories/icons"
	FolderCandidatePhotos = "candidates/photos"
	FolderVideos          = "videos"
)

type ObjectStorage interface {
	// 上傳檔案，回傳 bucket 內的物件路徑
	Upload(ctx context.Context, folder string, fileName string, r io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, objectPath string) error
	PublicURL(objectPath string) string
}

type MinioStorage struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// NewMinioStorage 建立 client 並確保 bucket 存在且可公開讀取
func NewMinioStorage(ctx context.Context, cfg *config.StorageConfig) (ObjectStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("make bucket: %w", err)
		}
		if err := client.SetBucketPolicy(ctx, cfg.Bucket, publicReadPolicy(cfg.Bucket)); err != nil {
			return nil, fmt.Errorf("set bucket policy: %w", err)
		}
	}

	return &MinioStorage{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: PublicBaseURL(cfg),
	}, nil
}

func (s *MinioStorage) Upload(ctx context.Context, folder string, fileName string, r io.Reader, size int64, contentType string) (string, error) {
	objectPath := ObjectPath(folder, fileName)

	_, err := s.client.PutObject(ctx, s.bucket, objectPath, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", objectPath, err)
	}
	return objectPath, nil
}

func (s *MinioStorage) Delete(ctx context.Context, objectPath string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, objectPath, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("delete %s: %w", objectPath, err)
	}
	return nil
}

func (s *MinioStorage) PublicURL(objectPath string) string {
	return s.publicURL + "/" + s.bucket + "/" + objectPath
}

// ObjectPath 產生不會重複的物件路徑，保留原始副檔名
func ObjectPath(folder, fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	return path.Join(folder, uuid.NewString()+ext)
}

// PublicBaseURL 未設定 MINIO_PUBLIC_URL 時由 endpoint 推導
func PublicBaseURL(cfg *config.StorageConfig) string {
	if cfg.PublicURL != "" {
		return strings.TrimRight(cfg.PublicURL, "/")
	}
	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}
	return scheme + "://" + cfg.Endpoint
}

func publicReadPolicy(bucket string) string {
	return fmt.Sprintf(`{
  "Version": "2012-10-17",
  "Statement": [{
    "Effect": "Allow",
    "Principal": {"AWS": ["*"]},
    "Action": ["s3:GetObject"],
    "Resource": ["arn:aws:s3:::%s/*"]
  }]
}`, bucket)
}
