package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Saddickq/TeacherTrek/internal/transfer"
	"github.com/Saddickq/TeacherTrek/middlewares"
)

type RequestHandler struct {
	Transfer *transfer.Service
}

func NewRequestHandler(svc *transfer.Service) *RequestHandler {
	return &RequestHandler{Transfer: svc}
}

/* -------------------- Payloads -------------------- */

type requestForm struct {
	School      string `json:"school" form:"school"`
	Subjects    string `json:"subjects" form:"subjects"`
	County      string `json:"county" form:"county"`
	Destination string `json:"destination" form:"destination"`
	Purpose     string `json:"purpose" form:"purpose"`
}

func (f *requestForm) fields() transfer.Fields {
	return transfer.Fields{
		School:      strings.TrimSpace(f.School),
		Subjects:    f.Subjects,
		County:      f.County,
		Destination: f.Destination,
		Purpose:     strings.TrimSpace(f.Purpose),
	}
}

func validateRequestForm(f *requestForm) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(f.School) == "" {
		errs["school"] = "please enter your current school"
	}
	if !transfer.IsSubject(f.Subjects) {
		errs["subjects"] = "please select a teaching subject"
	}
	if !transfer.IsSubCounty(f.County) {
		errs["county"] = "please select your current sub-county"
	}
	if !transfer.IsSubCounty(f.Destination) {
		errs["destination"] = "please select a destination sub-county"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// choices feeds the request form dropdowns.
func choices() map[string]any {
	return map[string]any{
		"subjects":     transfer.Subjects,
		"sub_counties": transfer.SubCounties,
	}
}

/* -------------------- Handlers -------------------- */

// GET /request/new
func (h *RequestHandler) NewForm(c echo.Context) error {
	return c.JSON(http.StatusOK, choices())
}

// POST /request/new
func (h *RequestHandler) Create(c echo.Context) error {
	u, _ := middlewares.CurrentUser(c)

	var form requestForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if errs := validateRequestForm(&form); errs != nil {
		return validationFailed(errs)
	}

	r, err := h.Transfer.Create(u.ID, form.fields())
	if err != nil {
		return toHTTPError(err)
	}
	return c.Redirect(http.StatusSeeOther, "/request/"+r.ID)
}

// GET,POST /request/:id
func (h *RequestHandler) Show(c echo.Context) error {
	u, _ := middlewares.CurrentUser(c)

	r, err := h.Transfer.Get(c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"request": r,
		"is_own":  r.TeacherID == u.ID,
	})
}

// GET /request/:id/update
func (h *RequestHandler) EditForm(c echo.Context) error {
	u, _ := middlewares.CurrentUser(c)

	r, err := h.Transfer.Get(c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	if r.TeacherID != u.ID {
		return echo.NewHTTPError(http.StatusForbidden, map[string]any{"error": "FORBIDDEN"})
	}
	out := choices()
	out["request"] = r
	return c.JSON(http.StatusOK, out)
}

// POST /request/:id/update
func (h *RequestHandler) Update(c echo.Context) error {
	u, _ := middlewares.CurrentUser(c)

	var form requestForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if errs := validateRequestForm(&form); errs != nil {
		return validationFailed(errs)
	}

	r, err := h.Transfer.Update(c.Param("id"), u.ID, form.fields())
	if err != nil {
		return toHTTPError(err)
	}
	return c.Redirect(http.StatusSeeOther, "/request/"+r.ID)
}

// POST /request/:id/delete
func (h *RequestHandler) Delete(c echo.Context) error {
	u, _ := middlewares.CurrentUser(c)

	if err := h.Transfer.Delete(c.Param("id"), u.ID); err != nil {
		return toHTTPError(err)
	}
	return c.Redirect(http.StatusSeeOther, "/home")
}
