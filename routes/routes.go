package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/Saddickq/TeacherTrek/handlers"
	"github.com/Saddickq/TeacherTrek/middlewares"
)

// Handlers carries everything Register needs; main builds it so routing
// stays free of construction logic.
type Handlers struct {
	Auth    *handlers.AuthHandler
	Account *handlers.AccountHandler
	Request *handlers.RequestHandler
	Home    *handlers.HomeHandler

	// Session resolves the session cookie to a user on every request.
	Session echo.MiddlewareFunc
	// PictureDir is served as static content so uploaded profile pictures
	// stay reachable by filename.
	PictureDir string
}

// Register wires all HTTP routes.
func Register(e *echo.Echo, h Handlers) {
	e.Use(h.Session)

	// ===== Public =====
	e.GET("/", h.Home.Landing)
	e.GET("/about", h.Home.About)
	e.GET("/healthz", handlers.Health)
	e.Static("/static/profile_pics", h.PictureDir)

	e.GET("/register", h.Auth.ShowRegister)
	e.POST("/register", h.Auth.Register)
	e.GET("/login", h.Auth.ShowLogin)
	e.POST("/login", h.Auth.Login)
	e.GET("/logout", h.Auth.Logout)

	e.GET("/reset_password", h.Auth.ShowForgotPassword)
	e.POST("/reset_password", h.Auth.ForgotPassword)
	e.GET("/reset_password/:token", h.Auth.ShowResetPassword)
	e.POST("/reset_password/:token", h.Auth.ResetPassword)

	// ===== Session required =====
	priv := e.Group("", middlewares.RequireSession())

	priv.GET("/home", h.Home.Home)

	priv.GET("/account", h.Account.Show)
	priv.POST("/account", h.Account.Update)

	priv.GET("/request/new", h.Request.NewForm)
	priv.POST("/request/new", h.Request.Create)
	priv.GET("/request/:id", h.Request.Show)
	priv.POST("/request/:id", h.Request.Show)
	priv.GET("/request/:id/update", h.Request.EditForm)
	priv.POST("/request/:id/update", h.Request.Update)
	priv.POST("/request/:id/delete", h.Request.Delete)
}
