package predictcntrl

import (
	"github.com/gofiber/fiber/v2"

	predictserv "github.com/chup1x/carprice/internal/services/predict"
)

func RegisterPricePredictRoutes(router fiber.Router, s *predictserv.PricePredictionService) {
	predictCntrl := NewPricePredictController(s)
	car := router.Group("/car")
	car.Post("/predict", predictCntrl.predictHandler)
}
