package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Saddickq/TeacherTrek/internal/apperr"
)

// Audience values keep session cookies and reset links from being swapped
// for one another.
const (
	audSession = "session"
	audReset   = "password-reset"
)

const (
	SessionTTL  = 24 * time.Hour
	RememberTTL = 30 * 24 * time.Hour
	ResetTTL    = 30 * time.Minute
)

// TokenService signs and verifies the HS256 tokens used for sessions and
// password-reset links.
type TokenService struct {
	Secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{Secret: []byte(secret)}
}

func (t *TokenService) sign(userID, audience string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"aud": audience,
		"exp": now.Add(ttl).Unix(),
		"iat": now.Unix(),
	}
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tk.SignedString(t.Secret)
}

func (t *TokenService) parse(raw, audience string) (string, error) {
	token, err := jwt.Parse(raw, func(tk *jwt.Token) (any, error) {
		if _, ok := tk.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", tk.Header["alg"])
		}
		return t.Secret, nil
	}, jwt.WithAudience(audience), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return "", apperr.ErrToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", apperr.ErrToken
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", apperr.ErrToken
	}
	return sub, nil
}

// SignSession issues a session token for the user.
func (t *TokenService) SignSession(userID string, ttl time.Duration) (string, error) {
	return t.sign(userID, audSession, ttl)
}

// ParseSession returns the user id in a session token, or apperr.ErrToken.
func (t *TokenService) ParseSession(raw string) (string, error) {
	return t.parse(raw, audSession)
}

// SignReset issues a password-reset token for the user.
func (t *TokenService) SignReset(userID string, ttl time.Duration) (string, error) {
	return t.sign(userID, audReset, ttl)
}

// ParseReset returns the user id in a reset token, or apperr.ErrToken for
// anything malformed, tampered or expired.
func (t *TokenService) ParseReset(raw string) (string, error) {
	return t.parse(raw, audReset)
}
