package rest

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"

	"github.com/chup1x/carprice/internal/config"
	"github.com/chup1x/carprice/internal/logger"
	predictserv "github.com/chup1x/carprice/internal/services/predict"
	predictcntrl "github.com/chup1x/carprice/internal/transport/v1/rest/predict"
	carformcntrl "github.com/chup1x/carprice/internal/transport/v1/web/carform"
)

type Server struct {
	app *fiber.App
}

func New() *Server {
	return &Server{}
}

func (s *Server) Start(_ context.Context, config *config.Config) error {
	client := predictserv.NewPricePredictionClient(config.PredictService.URL(), config.PredictService.Timeout)
	s.app = newApp(config, predictserv.NewPricePredictionService(client))

	if err := s.app.Listen(fmt.Sprintf(":%s", config.Server.Port)); err != nil {
		return fmt.Errorf("server start: %w", err)
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.app == nil {
		return nil
	}

	return s.app.ShutdownWithContext(ctx)
}

func newApp(config *config.Config, predictServ *predictserv.PricePredictionService) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.Middleware())

	store := session.New(session.Config{
		Expiration:     config.Session.Expiration,
		KeyGenerator:   uuid.NewString,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})

	carformcntrl.RegisterCarFormRoutes(app, predictServ, store)

	api := app.Group("/api/v1")
	predictcntrl.RegisterPricePredictRoutes(api, predictServ)

	if config.Server.StaticDir != "" {
		app.Static("/", config.Server.StaticDir)
	}

	return app
}
