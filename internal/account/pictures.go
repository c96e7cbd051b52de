package account

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/Saddickq/TeacherTrek/internal/apperr"
	"github.com/Saddickq/TeacherTrek/models"
)

// Thumbnail bound for stored profile pictures, aspect ratio preserved.
const thumbnailSize = 135

// PictureStore writes profile pictures into a local directory. Files are
// named by a fresh UUID plus the upload's original extension, so concurrent
// uploads cannot collide.
type PictureStore struct {
	Dir string
}

func NewPictureStore(dir string) *PictureStore { return &PictureStore{Dir: dir} }

// Save decodes the upload, shrinks it to fit the thumbnail bound and writes
// it under a random filename, which is returned. Unsupported extensions come
// back as a ValidationError.
func (p *PictureStore) Save(r io.Reader, originalName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	switch ext {
	case ".jpg", ".jpeg", ".png":
	default:
		return "", apperr.NewValidation("picture", "profile pictures must be jpg, jpeg or png")
	}

	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return "", apperr.NewValidation("picture", "could not read the uploaded image")
	}
	thumb := imaging.Fit(img, thumbnailSize, thumbnailSize, imaging.Lanczos)

	if err := os.MkdirAll(p.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create picture dir: %w", err)
	}
	name := uuid.NewString() + ext
	if err := imaging.Save(thumb, filepath.Join(p.Dir, name)); err != nil {
		return "", fmt.Errorf("save picture: %w", err)
	}
	return name, nil
}

// Remove deletes a previously stored picture. The shared placeholder is
// never removed, and a missing file is not an error.
func (p *PictureStore) Remove(name string) error {
	if name == "" || name == models.DefaultProfileImage {
		return nil
	}
	if err := os.Remove(filepath.Join(p.Dir, name)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
