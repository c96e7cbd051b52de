package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHasher abstracts password hashing so tests can stub it.
type PasswordHasher interface {
	Hash(password []byte) ([]byte, error)
	Compare(hash, password []byte) error
}

type BcryptHasher struct{}

func (BcryptHasher) Hash(pw []byte) ([]byte, error) {
	return bcrypt.GenerateFromPassword(pw, bcrypt.DefaultCost)
}

func (BcryptHasher) Compare(hash, pw []byte) error {
	return bcrypt.CompareHashAndPassword(hash, pw)
}
