package main

import (
	"log"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Saddickq/TeacherTrek/config"
	"github.com/Saddickq/TeacherTrek/database"
	"github.com/Saddickq/TeacherTrek/handlers"
	"github.com/Saddickq/TeacherTrek/internal/account"
	"github.com/Saddickq/TeacherTrek/internal/auth"
	"github.com/Saddickq/TeacherTrek/internal/mailer"
	"github.com/Saddickq/TeacherTrek/internal/transfer"
	"github.com/Saddickq/TeacherTrek/middlewares"
	"github.com/Saddickq/TeacherTrek/routes"
	"github.com/Saddickq/TeacherTrek/stores"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}

	users := stores.NewGormUserStore(db)
	requests := stores.NewGormRequestStore(db)

	tokens := auth.NewTokenService(cfg.AppSecret)
	authSvc := auth.NewService(users, auth.BcryptHasher{}, tokens)
	accountSvc := account.NewService(users, account.NewPictureStore(cfg.PictureDir))
	transferSvc := transfer.NewService(requests)

	var mail mailer.Mailer = mailer.LogMailer{}
	if cfg.SMTPHost != "" {
		port, err := strconv.Atoi(cfg.SMTPPort)
		if err != nil {
			log.Fatalf("bad SMTP_PORT %q: %v", cfg.SMTPPort, err)
		}
		mail = mailer.NewSMTPMailer(cfg.SMTPHost, port, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	routes.Register(e, routes.Handlers{
		Auth:       handlers.NewAuthHandler(authSvc, mail, cfg.BaseURL),
		Account:    handlers.NewAccountHandler(accountSvc),
		Request:    handlers.NewRequestHandler(transferSvc),
		Home:       handlers.NewHomeHandler(transferSvc),
		Session:    middlewares.LoadSession(tokens, users),
		PictureDir: cfg.PictureDir,
	})

	addr := ":" + cfg.AppPort
	log.Printf("server listening at %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
