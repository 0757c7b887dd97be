package carformcntrl

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	predictserv "github.com/chup1x/carprice/internal/services/predict"
)

func RegisterCarFormRoutes(router fiber.Router, s *predictserv.PricePredictionService, store *session.Store) {
	formCntrl := NewCarFormController(s, store)
	router.Get("/", formCntrl.pageHandler)
	router.Post("/field", formCntrl.fieldHandler)
	router.Post("/predict", formCntrl.submitHandler)
}
