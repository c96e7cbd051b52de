package handlers

import (
	"errors"
	"net/http"
	"regexp"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	"github.com/Saddickq/TeacherTrek/internal/apperr"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func isEmail(s string) bool { return emailRe.MatchString(s) }

func lengthBetween(s string, min, max int) bool {
	n := utf8.RuneCountInString(s)
	return n >= min && n <= max
}

// toHTTPError maps service errors onto HTTP status codes. Anything outside
// the taxonomy bubbles up to Echo's error handler as a 500.
func toHTTPError(err error) error {
	if ve, ok := apperr.AsValidation(err); ok {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{
			"error":  "VALIDATION_FAILED",
			"fields": ve.Fields,
		})
	}
	switch {
	case errors.Is(err, apperr.ErrAuth):
		return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{
			"error": "Login unsuccessful, please check email and password",
		})
	case errors.Is(err, apperr.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, map[string]any{"error": "FORBIDDEN"})
	case errors.Is(err, apperr.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	case errors.Is(err, apperr.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, map[string]any{
			"error": "you already have an active transfer request",
		})
	case errors.Is(err, apperr.ErrToken):
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{
			"error": "that reset link is invalid or has expired",
		})
	}
	return err
}

func validationFailed(errs map[string]string) error {
	return echo.NewHTTPError(http.StatusBadRequest, map[string]any{
		"error":  "VALIDATION_FAILED",
		"fields": errs,
	})
}
