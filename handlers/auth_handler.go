package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Saddickq/TeacherTrek/internal/auth"
	"github.com/Saddickq/TeacherTrek/internal/mailer"
	"github.com/Saddickq/TeacherTrek/middlewares"
)

type AuthHandler struct {
	Auth    *auth.Service
	Mail    mailer.Mailer
	BaseURL string
}

func NewAuthHandler(svc *auth.Service, mail mailer.Mailer, baseURL string) *AuthHandler {
	return &AuthHandler{Auth: svc, Mail: mail, BaseURL: strings.TrimRight(baseURL, "/")}
}

/* -------------------- Payloads -------------------- */

type registerReq struct {
	Username        string `json:"username" form:"username"`
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

type loginReq struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Remember bool   `json:"remember" form:"remember"`
}

type forgotPasswordReq struct {
	Email string `json:"email" form:"email"`
}

type resetPasswordReq struct {
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

/* -------------------- Validation -------------------- */

func validateRegister(r *registerReq) map[string]string {
	errs := map[string]string{}
	if !lengthBetween(strings.TrimSpace(r.Username), 3, 20) {
		errs["username"] = "username must be between 3 and 20 characters"
	}
	if !isEmail(strings.TrimSpace(r.Email)) {
		errs["email"] = "please enter a valid email address"
	}
	if !lengthBetween(r.Password, 5, 20) {
		errs["password"] = "password must be between 5 and 20 characters"
	}
	if r.ConfirmPassword != r.Password {
		errs["confirm_password"] = "passwords do not match"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validateNewPassword(r *resetPasswordReq) map[string]string {
	errs := map[string]string{}
	if !lengthBetween(r.Password, 5, 20) {
		errs["password"] = "password must be between 5 and 20 characters"
	}
	if r.ConfirmPassword != r.Password {
		errs["confirm_password"] = "passwords do not match"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

/* -------------------- Handlers -------------------- */

// GET /register
func (h *AuthHandler) ShowRegister(c echo.Context) error {
	if _, ok := middlewares.CurrentUser(c); ok {
		return c.Redirect(http.StatusSeeOther, "/home")
	}
	return c.JSON(http.StatusOK, map[string]any{"title": "Register"})
}

// POST /register
func (h *AuthHandler) Register(c echo.Context) error {
	if _, ok := middlewares.CurrentUser(c); ok {
		return c.Redirect(http.StatusSeeOther, "/home")
	}
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if errs := validateRegister(&req); errs != nil {
		return validationFailed(errs)
	}
	if _, err := h.Auth.Register(req.Username, req.Email, req.Password); err != nil {
		return toHTTPError(err)
	}
	return c.Redirect(http.StatusSeeOther, "/login")
}

// GET /login
func (h *AuthHandler) ShowLogin(c echo.Context) error {
	if _, ok := middlewares.CurrentUser(c); ok {
		return c.Redirect(http.StatusSeeOther, "/home")
	}
	return c.JSON(http.StatusOK, map[string]any{"title": "Login"})
}

// POST /login
func (h *AuthHandler) Login(c echo.Context) error {
	if _, ok := middlewares.CurrentUser(c); ok {
		return c.Redirect(http.StatusSeeOther, "/home")
	}
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}

	u, err := h.Auth.Authenticate(req.Email, req.Password)
	if err != nil {
		return toHTTPError(err)
	}

	ttl := auth.SessionTTL
	if req.Remember {
		ttl = auth.RememberTTL
	}
	token, err := h.Auth.Tokens.SignSession(u.ID, ttl)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "TOKEN_GEN_FAILED"})
	}
	cookieTTL := ttl
	if !req.Remember {
		cookieTTL = 0 // browser-session cookie
	}
	middlewares.SetSessionCookie(c, token, cookieTTL)
	return c.Redirect(http.StatusSeeOther, "/home")
}

// GET /logout
func (h *AuthHandler) Logout(c echo.Context) error {
	middlewares.ClearSessionCookie(c)
	return c.Redirect(http.StatusSeeOther, "/login")
}

// GET /reset_password
func (h *AuthHandler) ShowForgotPassword(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"title": "Reset Password"})
}

// POST /reset_password
//
// The response is the same whether or not the address is registered, so the
// endpoint cannot be used to enumerate accounts.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if !isEmail(strings.TrimSpace(req.Email)) {
		return validationFailed(map[string]string{"email": "please enter a valid email address"})
	}

	if u, err := h.Auth.Users.FindByEmail(auth.NormalizeEmail(req.Email)); err == nil {
		token, err := h.Auth.IssueResetToken(u)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "TOKEN_GEN_FAILED"})
		}
		resetURL := h.BaseURL + "/reset_password/" + token
		logger := c.Logger()
		to := u.Email
		go func() {
			if err := h.Mail.SendPasswordReset(to, resetURL); err != nil {
				logger.Errorf("send reset mail: %v", err)
			}
		}()
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "if that email is registered, a reset link has been sent",
	})
}

// GET /reset_password/:token
func (h *AuthHandler) ShowResetPassword(c echo.Context) error {
	if _, err := h.Auth.VerifyResetToken(c.Param("token")); err != nil {
		return c.Redirect(http.StatusSeeOther, "/reset_password")
	}
	return c.JSON(http.StatusOK, map[string]any{"title": "Choose a new password"})
}

// POST /reset_password/:token
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	u, err := h.Auth.VerifyResetToken(c.Param("token"))
	if err != nil {
		return c.Redirect(http.StatusSeeOther, "/reset_password")
	}
	var req resetPasswordReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if errs := validateNewPassword(&req); errs != nil {
		return validationFailed(errs)
	}
	if err := h.Auth.ResetPassword(u, req.Password); err != nil {
		return toHTTPError(err)
	}
	return c.Redirect(http.StatusSeeOther, "/login")
}
