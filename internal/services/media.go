package services

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	BucketCovers = "covers"
	BucketPhotos = "photos"
)

func EnsureStoragePath(base, bucket string) (string, error) {
	path := filepath.Join(base, bucket)
	if err := os.MkdirAll(path, 0755); err != nil {
		return "", err
	}
	return path, nil
}

// SaveUpload stores an uploaded file under its bucket and returns the
// relative reference that gets recorded on the owning record. The original
// filename only contributes its extension; the stored name is random.
func SaveUpload(basePath, bucket, filename string, body io.Reader) (string, error) {
	key := uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	bucketPath, err := EnsureStoragePath(basePath, bucket)
	if err != nil {
		return "", err
	}
	targetPath := filepath.Join(bucketPath, key)

	file, err := os.Create(targetPath)
	if err != nil {
		return "", err
	}
	size, err := io.Copy(file, body)
	_ = file.Close()
	if err != nil {
		_ = os.Remove(targetPath)
		return "", err
	}
	if size == 0 {
		_ = os.Remove(targetPath)
		return "", ErrBadRequest("O arquivo enviado está vazio.")
	}
	return MediaReference(bucket, key), nil
}

func MediaReference(bucket, key string) string {
	return "/media/" + bucket + "/" + key
}

// RemoveUpload deletes the stored file behind a reference, best-effort.
// References that do not point into local storage (external video URLs,
// nil optionals) are ignored.
func RemoveUpload(basePath string, reference *string) {
	if reference == nil {
		return
	}
	rel := strings.TrimPrefix(*reference, "/media/")
	if rel == *reference || strings.Contains(rel, "..") {
		return
	}
	_ = os.Remove(filepath.Join(basePath, filepath.FromSlash(rel)))
}
