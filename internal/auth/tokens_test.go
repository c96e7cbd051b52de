package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Saddickq/TeacherTrek/internal/apperr"
)

func TestResetTokenRoundTrip(t *testing.T) {
	ts := NewTokenService("secret")

	raw, err := ts.SignReset("user-1", ResetTTL)
	assert.NoError(t, err)

	userID, err := ts.ParseReset(raw)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestResetTokenExpires(t *testing.T) {
	ts := NewTokenService("secret")

	raw, err := ts.SignReset("user-1", -time.Minute)
	assert.NoError(t, err)

	_, err = ts.ParseReset(raw)
	assert.ErrorIs(t, err, apperr.ErrToken)
}

func TestResetTokenTamperedSignature(t *testing.T) {
	ts := NewTokenService("secret")

	raw, err := ts.SignReset("user-1", ResetTTL)
	assert.NoError(t, err)

	// Flip a character in the signature segment.
	i := strings.LastIndex(raw, ".") + 1
	sig := []byte(raw[i:])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := raw[:i] + string(sig)

	_, err = ts.ParseReset(tampered)
	assert.ErrorIs(t, err, apperr.ErrToken)
}

func TestResetTokenWrongSecret(t *testing.T) {
	raw, err := NewTokenService("secret-a").SignReset("user-1", ResetTTL)
	assert.NoError(t, err)

	_, err = NewTokenService("secret-b").ParseReset(raw)
	assert.ErrorIs(t, err, apperr.ErrToken)
}

func TestSessionTokenIsNotAResetToken(t *testing.T) {
	ts := NewTokenService("secret")

	raw, err := ts.SignSession("user-1", SessionTTL)
	assert.NoError(t, err)

	_, err = ts.ParseReset(raw)
	assert.ErrorIs(t, err, apperr.ErrToken)

	userID, err := ts.ParseSession(raw)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}
