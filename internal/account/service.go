// Package account updates profile details for an authenticated user.
package account

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Saddickq/TeacherTrek/internal/apperr"
	"github.com/Saddickq/TeacherTrek/internal/auth"
	"github.com/Saddickq/TeacherTrek/models"
	"github.com/Saddickq/TeacherTrek/stores"
)

type Service struct {
	Users    stores.UserStore
	Pictures *PictureStore
}

func NewService(users stores.UserStore, pictures *PictureStore) *Service {
	return &Service{Users: users, Pictures: pictures}
}

// Update applies the submitted username, email and optional picture to the
// user. Uniqueness is re-checked only for values that actually changed, so
// resubmitting your own current details never trips a false conflict.
func (s *Service) Update(u *models.User, username, email string, picture io.Reader, pictureName string) error {
	username = strings.TrimSpace(username)
	email = auth.NormalizeEmail(email)

	if username != "" && username != u.Username {
		if _, err := s.Users.FindByUsername(username); err == nil {
			return apperr.NewValidation("username", "this username is taken, please try a different one")
		} else if !errors.Is(err, apperr.ErrNotFound) {
			return err
		}
		u.Username = username
	}
	if email != "" && email != u.Email {
		if _, err := s.Users.FindByEmail(email); err == nil {
			return apperr.NewValidation("email", "this email is already registered, please try a different one")
		} else if !errors.Is(err, apperr.ErrNotFound) {
			return err
		}
		u.Email = email
	}

	oldPicture := ""
	if picture != nil {
		name, err := s.Pictures.Save(picture, pictureName)
		if err != nil {
			return err
		}
		oldPicture = u.ImageProfile
		u.ImageProfile = name
	}

	if err := s.Users.Save(u); err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	// Best effort; a stale file on disk is the worst outcome.
	_ = s.Pictures.Remove(oldPicture)
	return nil
}
