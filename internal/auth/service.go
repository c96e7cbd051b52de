package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Saddickq/TeacherTrek/internal/apperr"
	"github.com/Saddickq/TeacherTrek/models"
	"github.com/Saddickq/TeacherTrek/stores"
)

// Service implements registration, credential checks and the password-reset
// flow on top of a UserStore.
type Service struct {
	Users  stores.UserStore
	Hasher PasswordHasher
	Tokens *TokenService
}

func NewService(users stores.UserStore, hasher PasswordHasher, tokens *TokenService) *Service {
	return &Service{Users: users, Hasher: hasher, Tokens: tokens}
}

// NormalizeEmail lowercases and trims an address so lookups and the unique
// index agree on a single spelling.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new account. Duplicate username or email comes back as
// a ValidationError naming the offending field.
func (s *Service) Register(username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = NormalizeEmail(email)

	if _, err := s.Users.FindByUsername(username); err == nil {
		return nil, apperr.NewValidation("username", "this username is taken, please try a different one")
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}
	if _, err := s.Users.FindByEmail(email); err == nil {
		return nil, apperr.NewValidation("email", "this email is already registered, please try a different one")
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	hash, err := s.Hasher.Hash([]byte(password))
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.Users.Create(u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// Authenticate returns the user for a matching email/password pair.
// Unknown email and wrong password both come back as apperr.ErrAuth.
func (s *Service) Authenticate(email, password string) (*models.User, error) {
	u, err := s.Users.FindByEmail(NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrAuth
		}
		return nil, err
	}
	if err := s.Hasher.Compare([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.ErrAuth
	}
	return u, nil
}

// IssueResetToken produces a signed, time-limited token embedding the user id.
func (s *Service) IssueResetToken(u *models.User) (string, error) {
	return s.Tokens.SignReset(u.ID, ResetTTL)
}

// VerifyResetToken resolves a reset token back to its user. Any failure,
// including a token for a since-unknown user, is apperr.ErrToken.
func (s *Service) VerifyResetToken(raw string) (*models.User, error) {
	userID, err := s.Tokens.ParseReset(raw)
	if err != nil {
		return nil, apperr.ErrToken
	}
	u, err := s.Users.GetByID(userID)
	if err != nil {
		return nil, apperr.ErrToken
	}
	return u, nil
}

// ResetPassword rehashes and replaces the stored credential.
func (s *Service) ResetPassword(u *models.User, newPassword string) error {
	hash, err := s.Hasher.Hash([]byte(newPassword))
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	u.PasswordHash = string(hash)
	if err := s.Users.Save(u); err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}
