package handlers

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"UMS_TALENTA_BACK-END/internal/config"
)

const photoDir = "profiles"

var (
	errPhotoTooLarge = errors.New("photo exceeds upload limit")
	errPhotoRef      = errors.New("photo reference outside media root")
)

// photoFiles stores profile photos as flat files under <root>/profiles
type photoFiles struct {
	root     string
	maxBytes int64
	logger   *zap.Logger
}

func newPhotoFiles(media config.MediaConfig, logger *zap.Logger) photoFiles {
	return photoFiles{root: media.Root, maxBytes: media.MaxUploadBytes, logger: logger}
}

// path resolves a stored reference such as "profiles/<uuid>.jpg". Anything
// that does not name a file directly inside the photo directory is refused.
func (f photoFiles) path(ref string) (string, error) {
	dir := filepath.Join(f.root, photoDir)
	path := filepath.Join(f.root, filepath.FromSlash(ref))
	rel, err := filepath.Rel(dir, path)
	if err != nil || rel == "." || rel == ".." || filepath.Base(rel) != rel {
		return "", errPhotoRef
	}
	return path, nil
}

// save writes src for ref, refusing anything over the upload limit
func (f photoFiles) save(ref string, src io.Reader) error {
	path, err := f.path(ref)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	dst, err := os.Create(path)
	if err != nil {
		return err
	}

	written, err := io.Copy(dst, io.LimitReader(src, f.maxBytes+1))
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err == nil && written > f.maxBytes {
		err = errPhotoTooLarge
	}
	if err != nil {
		_ = os.Remove(path)
	}
	return err
}

// remove deletes the file behind ref; empty or foreign references are ignored
func (f photoFiles) remove(ref *string) {
	if ref == nil || *ref == "" {
		return
	}
	path, err := f.path(*ref)
	if err != nil {
		f.logger.Warn("refusing to remove photo", zap.String("ref", *ref))
		return
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		f.logger.Warn("failed to remove photo", zap.String("path", path), zap.Error(err))
	}
}
