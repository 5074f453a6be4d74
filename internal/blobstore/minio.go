package blobstore

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/filedrop/filedrop_api/internal/config"
	"github.com/filedrop/filedrop_api/internal/errlocal"
)

const minioInitTimeout = 10 * time.Second

// minioStore keeps blobs in a single S3-compatible bucket, keyed by stored
// name just like the flat local directory.
type minioStore struct {
	client *minio.Client
	bucket string
}

func NewMinioStore(cfg config.Config) (BlobStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), minioInitTimeout)
	defer cancel()

	client, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		return nil, err
	}

	store := &minioStore{client: client, bucket: cfg.Storage.Bucket}
	err = client.MakeBucket(ctx, cfg.Storage.Bucket, minio.MakeBucketOptions{})
	if err != nil {
		exists, errBucketExists := client.BucketExists(ctx, cfg.Storage.Bucket)
		if errBucketExists == nil && exists {
			return store, nil
		}

		return nil, err
	}

	return store, nil
}

func (m *minioStore) Save(ctx context.Context, r io.Reader, storedName string, size int64) error {
	_, err := m.client.PutObject(ctx, m.bucket, storedName, r, size, minio.PutObjectOptions{})
	return err
}

func (m *minioStore) Open(ctx context.Context, storedName string) (io.ReadCloser, error) {
	obj, err := m.client.GetObject(ctx, m.bucket, storedName, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}

	// GetObject is lazy; Stat forces the existence check before streaming.
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		var respErr minio.ErrorResponse
		if errors.As(err, &respErr) && respErr.Code == "NoSuchKey" {
			return nil, errlocal.NewErrGone("file missing", err.Error(),
				map[string]any{"stored_name": storedName})
		}
		return nil, err
	}

	return obj, nil
}

func (m *minioStore) Remove(ctx context.Context, storedName string) error {
	return m.client.RemoveObject(ctx, m.bucket, storedName, minio.RemoveObjectOptions{})
}
