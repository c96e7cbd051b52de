package middlewares

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Saddickq/TeacherTrek/internal/auth"
	"github.com/Saddickq/TeacherTrek/models"
	"github.com/Saddickq/TeacherTrek/stores"
)

// SessionCookie holds the signed session token.
const SessionCookie = "session"

const userKey = "auth.user"

// sessionToken finds the token in the session cookie, falling back to a
// bearer Authorization header for non-browser clients.
func sessionToken(c echo.Context) string {
	if ck, err := c.Cookie(SessionCookie); err == nil && ck.Value != "" {
		return ck.Value
	}
	h := c.Request().Header.Get("Authorization")
	parts := strings.SplitN(h, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}

// LoadSession resolves the session token to a user and attaches it to the
// context. It never fails the request; gating is RequireSession's job.
func LoadSession(tokens *auth.TokenService, users stores.UserStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := sessionToken(c)
			if raw == "" {
				return next(c)
			}
			userID, err := tokens.ParseSession(raw)
			if err != nil {
				return next(c)
			}
			u, err := users.GetByID(userID)
			if err != nil {
				return next(c)
			}
			c.Set(userKey, u)
			return next(c)
		}
	}
}

// RequireSession redirects unauthenticated requests to the login page.
func RequireSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := CurrentUser(c); !ok {
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			return next(c)
		}
	}
}

// CurrentUser returns the authenticated user attached by LoadSession.
func CurrentUser(c echo.Context) (*models.User, bool) {
	u, ok := c.Get(userKey).(*models.User)
	return u, ok
}

// SetSessionCookie installs the session token on the response. A zero ttl
// yields a browser-session cookie; "remember me" passes a long ttl so the
// cookie survives restarts.
func SetSessionCookie(c echo.Context, token string, ttl time.Duration) {
	ck := &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if ttl > 0 {
		ck.Expires = time.Now().Add(ttl)
	}
	c.SetCookie(ck)
}

// ClearSessionCookie removes the session cookie. Safe to call when none is
// set, which keeps logout idempotent.
func ClearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
