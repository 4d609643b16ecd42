package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-doc-vault/internal/config"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/google/uuid"
)

// ErrUnsafeFilePath is returned when a stored path escapes the upload
// directory (absolute, or containing parent-directory traversal).
var ErrUnsafeFilePath = errors.New("unsafe file path")

// documentFileStorage is the local-disk implementation of
// [DocumentFileStorage]. Every blob lives directly under the configured
// upload directory; the database stores only the generated filename,
// always relative, never absolute.
type documentFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewDocumentFileStorage constructs a [DocumentFileStorage] rooted at
// cfg.UploadDir, creating the directory when absent.
func NewDocumentFileStorage(cfg config.Files, logger *logger.Logger) (DocumentFileStorage, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating upload directory: %w", err)
	}

	logger.Debug().Str("dir", cfg.UploadDir).Msg("creating document file storage")
	return &documentFileStorage{
		dir:    cfg.UploadDir,
		logger: logger,
	}, nil
}

// Save streams src into a newly created file under the upload directory
// and returns the generated filename (relative to the directory).
//
// The name combines the current unix-nano timestamp with a random uuid
// suffix and preserves the original extension, so concurrent uploads of
// identically named files never collide. A partially written file is
// removed when the copy fails.
func (s *documentFileStorage) Save(ctx context.Context, src io.Reader, originalFilename string) (string, error) {
	log := logger.FromContext(ctx)

	ext := strings.ToLower(filepath.Ext(filepath.Base(originalFilename)))
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), uuid.NewString()[:8], ext)

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		log.Err(err).Str("func", "*documentFileStorage.Save").Msg("error creating blob file")
		return "", fmt.Errorf("error creating blob file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		if removeErr := os.Remove(dst.Name()); removeErr != nil {
			log.Warn().Err(removeErr).Str("path", dst.Name()).Msg("cannot remove partially written blob")
		}
		log.Err(err).Str("func", "*documentFileStorage.Save").Msg("error writing blob file")
		return "", fmt.Errorf("error writing blob file: %w", err)
	}

	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("error closing blob file: %w", err)
	}

	return name, nil
}

// Remove deletes the blob stored under relPath. The path is validated to
// stay inside the upload directory before any filesystem call.
func (s *documentFileStorage) Remove(ctx context.Context, relPath string) error {
	log := logger.FromContext(ctx)

	if err := validateRelPath(relPath); err != nil {
		log.Err(err).Str("path", relPath).Msg("refusing to remove blob outside upload directory")
		return err
	}

	if err := os.Remove(filepath.Join(s.dir, relPath)); err != nil {
		return fmt.Errorf("error removing blob file: %w", err)
	}

	return nil
}

// Dir returns the root directory blobs are stored under.
func (s *documentFileStorage) Dir() string {
	return s.dir
}

// validateRelPath rejects absolute paths and parent-directory traversal.
func validateRelPath(relPath string) error {
	if relPath == "" || filepath.IsAbs(relPath) {
		return ErrUnsafeFilePath
	}

	clean := filepath.Clean(relPath)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return ErrUnsafeFilePath
	}

	return nil
}
