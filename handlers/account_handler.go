package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Saddickq/TeacherTrek/internal/account"
	"github.com/Saddickq/TeacherTrek/middlewares"
)

type AccountHandler struct {
	Account *account.Service
}

func NewAccountHandler(svc *account.Service) *AccountHandler {
	return &AccountHandler{Account: svc}
}

// GET /account
func (h *AccountHandler) Show(c echo.Context) error {
	u, _ := middlewares.CurrentUser(c)
	return c.JSON(http.StatusOK, map[string]any{
		"username":      u.Username,
		"email":         u.Email,
		"image_profile": u.ImageProfile,
		"image_url":     "/static/profile_pics/" + u.ImageProfile,
	})
}

// POST /account
//
// Multipart form: username and email update the account when they differ
// from the current values; an optional "picture" file replaces the profile
// image.
func (h *AccountHandler) Update(c echo.Context) error {
	u, _ := middlewares.CurrentUser(c)

	username := strings.TrimSpace(c.FormValue("username"))
	email := strings.TrimSpace(c.FormValue("email"))

	errs := map[string]string{}
	if username != "" && !lengthBetween(username, 3, 20) {
		errs["username"] = "username must be between 3 and 20 characters"
	}
	if email != "" && !isEmail(email) {
		errs["email"] = "please enter a valid email address"
	}
	if len(errs) > 0 {
		return validationFailed(errs)
	}

	fh, err := c.FormFile("picture")
	if err != nil {
		// Only a genuinely absent file means "no upload in this
		// submission"; a broken multipart body must not be swallowed.
		if !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
			return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_UPLOAD"})
		}
		if uerr := h.Account.Update(u, username, email, nil, ""); uerr != nil {
			return toHTTPError(uerr)
		}
		return c.Redirect(http.StatusSeeOther, "/account")
	}

	src, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_UPLOAD"})
	}
	defer src.Close()

	if err := h.Account.Update(u, username, email, src, fh.Filename); err != nil {
		return toHTTPError(err)
	}
	return c.Redirect(http.StatusSeeOther, "/account")
}
