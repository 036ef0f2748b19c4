package storage

import (
	"context"
	"fmt"
	"io"
	"path"

	gcs "cloud.google.com/go/storage"
)

// GCSStore writes resume files to a Google Cloud Storage bucket under a
// fixed prefix.
type GCSStore struct {
	Client *gcs.Client
	Bucket string
	Prefix string
}

func NewGCSStore(client *gcs.Client, bucket string) *GCSStore {
	return &GCSStore{Client: client, Bucket: bucket, Prefix: "resumes"}
}

func (s *GCSStore) object(name string) string {
	return path.Join(s.Prefix, path.Base(name))
}

func (s *GCSStore) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	objectPath := s.object(name)
	w := s.Client.Bucket(s.Bucket).Object(objectPath).NewWriter(ctx)

	if _, err := io.Copy(w, r); err != nil {
		return "", fmt.Errorf("failed to upload file to GCS: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to close GCS writer: %w", err)
	}

	return "https://storage.googleapis.com/" + s.Bucket + "/" + objectPath, nil
}

func (s *GCSStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	rc, err := s.Client.Bucket(s.Bucket).Object(s.object(name)).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch file from GCS: %w", err)
	}
	return rc, nil
}

func (s *GCSStore) Delete(ctx context.Context, name string) error {
	return s.Client.Bucket(s.Bucket).Object(s.object(name)).Delete(ctx)
}
