package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Saddickq/TeacherTrek/internal/apperr"
	"github.com/Saddickq/TeacherTrek/internal/transfer"
	"github.com/Saddickq/TeacherTrek/middlewares"
	"github.com/Saddickq/TeacherTrek/models"
)

type HomeHandler struct {
	Transfer *transfer.Service
}

func NewHomeHandler(svc *transfer.Service) *HomeHandler {
	return &HomeHandler{Transfer: svc}
}

// GET /
func (h *HomeHandler) Landing(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"title":   "TeacherTrek",
		"message": "register or log in to manage your transfer request",
	})
}

// GET /about
func (h *HomeHandler) About(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"title":   "About",
		"message": "TeacherTrek pairs teachers seeking reciprocal transfers between sub-counties",
	})
}

// GET /home
//
// The signed-in dashboard: the teacher's own request, if any, plus the
// reciprocal-swap candidates heading into their sub-county.
func (h *HomeHandler) Home(c echo.Context) error {
	u, _ := middlewares.CurrentUser(c)

	own, err := h.Transfer.Own(u.ID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return c.JSON(http.StatusOK, map[string]any{
				"username": u.Username,
				"request":  nil,
				"matches":  []models.TransferRequest{},
			})
		}
		return toHTTPError(err)
	}

	matches, err := h.Transfer.FindMatches(u.ID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"username": u.Username,
		"request":  own,
		"matches":  matches,
	})
}
