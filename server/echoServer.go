package server

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/TejaswaniRai/MindMesh/config"
)

type echoServer struct {
	app *echo.Echo
	cfg *config.Config
}

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func NewEchoServer(cfg *config.Config) Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Serve Swagger documentation
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Serve uploaded study material files
	e.Static("/assets", cfg.Server.AssetsDir)

	return &echoServer{
		app: e,
		cfg: cfg,
	}
}

func (s *echoServer) Start() error {
	return s.app.Start(fmt.Sprintf(":%d", s.cfg.Server.Port))
}

func (s *echoServer) GetEcho() *echo.Echo {
	return s.app
}
