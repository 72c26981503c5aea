// Package storage keeps uploaded files in bucket directories on local
// disk and hands back public retrieval URLs. Object names are generated,
// never taken from the client.
package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type Bucket string

const (
	BucketPackageImages Bucket = "package-images"
	BucketBrochures     Bucket = "brochures"
)

var buckets = []Bucket{BucketPackageImages, BucketBrochures}

// LocalStore writes under Root and serves via BaseURL + "/storage/...".
type LocalStore struct {
	Root    string
	BaseURL string
}

func NewLocalStore(root, baseURL string) (*LocalStore, error) {
	for _, b := range buckets {
		if err := os.MkdirAll(filepath.Join(root, string(b)), 0o755); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", b, err)
		}
	}
	return &LocalStore{
		Root:    root,
		BaseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Upload stores the content under a fresh uuid-based name keeping only
// the original extension, and returns the public URL.
func (s *LocalStore) Upload(bucket Bucket, originalName string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	name := uuid.NewString() + ext

	dst := filepath.Join(s.Root, string(bucket), name)
	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create object: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("write object: %w", err)
	}

	return s.PublicURL(bucket, name), nil
}

func (s *LocalStore) PublicURL(bucket Bucket, name string) string {
	return s.BaseURL + "/" + path.Join("storage", string(bucket), name)
}
