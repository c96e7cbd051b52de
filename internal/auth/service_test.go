package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Saddickq/TeacherTrek/internal/apperr"
	"github.com/Saddickq/TeacherTrek/internal/auth"
	"github.com/Saddickq/TeacherTrek/internal/mocks"
	"github.com/Saddickq/TeacherTrek/models"
)

func newService(users *mocks.UserStore) *auth.Service {
	return auth.NewService(users, auth.BcryptHasher{}, auth.NewTokenService("test-secret"))
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	users := new(mocks.UserStore)
	users.On("FindByUsername", "newuser").Return(nil, apperr.ErrNotFound)
	users.On("FindByEmail", "taken@example.com").Return(&models.User{Email: "taken@example.com"}, nil)

	_, err := newService(users).Register("newuser", "Taken@Example.com", "secret1")

	ve, ok := apperr.AsValidation(err)
	assert.True(t, ok)
	assert.Contains(t, ve.Fields, "email")
	users.AssertExpectations(t)
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	users := new(mocks.UserStore)
	users.On("FindByUsername", "taken").Return(&models.User{Username: "taken"}, nil)

	_, err := newService(users).Register("taken", "fresh@example.com", "secret1")

	ve, ok := apperr.AsValidation(err)
	assert.True(t, ok)
	assert.Contains(t, ve.Fields, "username")
}

func TestRegisterNeverStoresPlaintext(t *testing.T) {
	users := new(mocks.UserStore)
	users.On("FindByUsername", "newuser").Return(nil, apperr.ErrNotFound)
	users.On("FindByEmail", "new@example.com").Return(nil, apperr.ErrNotFound)
	users.On("Create", mock.AnythingOfType("*models.User")).Return(nil)

	u, err := newService(users).Register("newuser", "new@example.com", "secret1")

	assert.NoError(t, err)
	assert.NotEqual(t, "secret1", u.PasswordHash)
	assert.NoError(t, auth.BcryptHasher{}.Compare([]byte(u.PasswordHash), []byte("secret1")))
	users.AssertExpectations(t)
}

func TestAuthenticate(t *testing.T) {
	hash, err := auth.BcryptHasher{}.Hash([]byte("secret1"))
	assert.NoError(t, err)
	stored := &models.User{ID: "u1", Email: "t@example.com", PasswordHash: string(hash)}

	users := new(mocks.UserStore)
	users.On("FindByEmail", "t@example.com").Return(stored, nil)
	users.On("FindByEmail", "nobody@example.com").Return(nil, apperr.ErrNotFound)

	svc := newService(users)

	u, err := svc.Authenticate("T@Example.com", "secret1")
	assert.NoError(t, err)
	assert.Equal(t, "u1", u.ID)

	_, err = svc.Authenticate("t@example.com", "wrongpass")
	assert.ErrorIs(t, err, apperr.ErrAuth)

	_, err = svc.Authenticate("nobody@example.com", "secret1")
	assert.ErrorIs(t, err, apperr.ErrAuth)
}

func TestVerifyResetTokenRoundTrip(t *testing.T) {
	stored := &models.User{ID: "u1", Email: "t@example.com"}
	users := new(mocks.UserStore)
	users.On("GetByID", "u1").Return(stored, nil)

	svc := newService(users)

	token, err := svc.IssueResetToken(stored)
	assert.NoError(t, err)

	u, err := svc.VerifyResetToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
}

func TestVerifyResetTokenUnknownUser(t *testing.T) {
	users := new(mocks.UserStore)
	users.On("GetByID", "gone").Return(nil, apperr.ErrNotFound)

	svc := newService(users)

	token, err := svc.IssueResetToken(&models.User{ID: "gone"})
	assert.NoError(t, err)

	_, err = svc.VerifyResetToken(token)
	assert.ErrorIs(t, err, apperr.ErrToken)
}

func TestVerifyResetTokenGarbage(t *testing.T) {
	svc := newService(new(mocks.UserStore))
	_, err := svc.VerifyResetToken("not-a-token")
	assert.ErrorIs(t, err, apperr.ErrToken)
}

func TestResetPasswordRehashes(t *testing.T) {
	hash, _ := auth.BcryptHasher{}.Hash([]byte("oldpass"))
	stored := &models.User{ID: "u1", PasswordHash: string(hash)}

	users := new(mocks.UserStore)
	users.On("Save", stored).Return(nil)

	err := newService(users).ResetPassword(stored, "newpass1")

	assert.NoError(t, err)
	assert.NotEqual(t, "newpass1", stored.PasswordHash)
	assert.NoError(t, auth.BcryptHasher{}.Compare([]byte(stored.PasswordHash), []byte("newpass1")))
	assert.Error(t, auth.BcryptHasher{}.Compare([]byte(stored.PasswordHash), []byte("oldpass")))
	users.AssertExpectations(t)
}
