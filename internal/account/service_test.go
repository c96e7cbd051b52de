package account_test

import (
	"bytes"
	"image"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"

	"github.com/Saddickq/TeacherTrek/internal/account"
	"github.com/Saddickq/TeacherTrek/internal/apperr"
	"github.com/Saddickq/TeacherTrek/internal/mocks"
	"github.com/Saddickq/TeacherTrek/models"
)

func pngUpload(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return &buf
}

func TestUpdateSelfConflictIsNotAConflict(t *testing.T) {
	u := &models.User{ID: "u1", Username: "same", Email: "same@example.com"}
	users := new(mocks.UserStore)
	users.On("Save", u).Return(nil)

	svc := account.NewService(users, account.NewPictureStore(t.TempDir()))

	err := svc.Update(u, "same", "same@example.com", nil, "")
	assert.NoError(t, err)
	users.AssertNotCalled(t, "FindByUsername")
	users.AssertNotCalled(t, "FindByEmail")
}

func TestUpdateRejectsTakenUsername(t *testing.T) {
	u := &models.User{ID: "u1", Username: "old", Email: "old@example.com"}
	users := new(mocks.UserStore)
	users.On("FindByUsername", "taken").Return(&models.User{Username: "taken"}, nil)

	svc := account.NewService(users, account.NewPictureStore(t.TempDir()))

	err := svc.Update(u, "taken", "old@example.com", nil, "")
	ve, ok := apperr.AsValidation(err)
	assert.True(t, ok)
	assert.Contains(t, ve.Fields, "username")
	assert.Equal(t, "old", u.Username)
	users.AssertNotCalled(t, "Save")
}

func TestUpdateStoresThumbnail(t *testing.T) {
	dir := t.TempDir()
	u := &models.User{ID: "u1", Username: "old", Email: "old@example.com", ImageProfile: models.DefaultProfileImage}
	users := new(mocks.UserStore)
	users.On("Save", u).Return(nil)

	svc := account.NewService(users, account.NewPictureStore(dir))

	err := svc.Update(u, "", "", pngUpload(t, 400, 200), "holiday photo.PNG")
	assert.NoError(t, err)
	assert.NotEqual(t, models.DefaultProfileImage, u.ImageProfile)
	assert.Equal(t, ".png", filepath.Ext(u.ImageProfile))

	img, err := imaging.Open(filepath.Join(dir, u.ImageProfile))
	assert.NoError(t, err)
	b := img.Bounds()
	assert.LessOrEqual(t, b.Dx(), 135)
	assert.LessOrEqual(t, b.Dy(), 135)
	// Landscape input: the long edge hits the bound, aspect preserved.
	assert.Equal(t, 135, b.Dx())
}

func TestPictureStoreRejectsBadExtension(t *testing.T) {
	store := account.NewPictureStore(t.TempDir())

	_, err := store.Save(bytes.NewBufferString("not an image"), "malware.exe")
	_, ok := apperr.AsValidation(err)
	assert.True(t, ok)
}

func TestPictureStoreRandomizesNames(t *testing.T) {
	store := account.NewPictureStore(t.TempDir())

	a, err := store.Save(pngUpload(t, 10, 10), "same.png")
	assert.NoError(t, err)
	b, err := store.Save(pngUpload(t, 10, 10), "same.png")
	assert.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestPictureStoreNeverRemovesPlaceholder(t *testing.T) {
	store := account.NewPictureStore(t.TempDir())
	assert.NoError(t, store.Remove(models.DefaultProfileImage))
	assert.NoError(t, store.Remove("")) // nothing stored yet
	assert.NoError(t, store.Remove("long-gone.png"))
}
