package blobstore

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"time"

	"github.com/filedrop/filedrop_api/internal/config"
	"github.com/filedrop/filedrop_api/internal/errlocal"
	"github.com/filedrop/filedrop_api/internal/models"
	"github.com/filedrop/filedrop_api/internal/utils"
)

// BlobStore persists uploaded bytes under server-generated names and streams
// them back. It knows nothing about ownership or sharing.
type BlobStore interface {
	Save(ctx context.Context, r io.Reader, storedName string, size int64) error
	Open(ctx context.Context, storedName string) (io.ReadCloser, error)
	Remove(ctx context.Context, storedName string) error
}

func New(cfg config.Config) (BlobStore, error) {
	switch cfg.Storage.Backend {
	case "s3":
		return NewMinioStore(cfg)
	default:
		return NewLocalStore(cfg.Storage.UploadDir)
	}
}

// allowedMimetypes is the fixed upload allow-list. Mimetypes are trusted as
// declared by the client; no content sniffing is performed.
var allowedMimetypes = map[string]bool{
	"application/pdf": true,
	"image/png":       true,
	"image/jpeg":      true,
	"image/gif":       true,
	"text/csv":        true,
	"text/plain":      true,
}

func IsAllowedMimetype(mimetype string) bool {
	return allowedMimetypes[mimetype]
}

// ValidateBatch checks every upload before any byte is written: a single
// disallowed type or oversized file rejects the whole batch.
func ValidateBatch(uploads []models.Upload, cfg config.UploadConfig) error {
	if len(uploads) == 0 {
		return errlocal.NewErrBadRequest("no files provided", "", nil)
	}
	if len(uploads) > cfg.MaxFiles {
		return errlocal.NewErrBadRequest(
			fmt.Sprintf("too many files: at most %d per upload", cfg.MaxFiles), "", nil)
	}

	for _, u := range uploads {
		if !IsAllowedMimetype(u.Mimetype) {
			return errlocal.NewErrBadRequest("invalid file type", "",
				map[string]any{"file": u.OriginalName, "mimetype": u.Mimetype})
		}
		if u.Size > cfg.MaxFileSizeBytes() {
			return errlocal.NewErrBadRequest(
				fmt.Sprintf("file too large: limit is %d MiB", cfg.MaxFileSizeMB), "",
				map[string]any{"file": u.OriginalName, "size": u.Size})
		}
	}

	return nil
}

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9_.-]`)

// SanitizeName replaces every character outside [A-Za-z0-9_.-] with an
// underscore. Client-supplied names are never used for storage paths without
// passing through here.
func SanitizeName(name string) string {
	return unsafeNameChars.ReplaceAllString(name, "_")
}

// NewStoredName generates a collision-resistant on-disk name of the form
// <unix-ms>-<random>-<sanitized original>.
func NewStoredName(originalName string) (string, error) {
	random, err := utils.RandomToken(8)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), random, SanitizeName(originalName)), nil
}
