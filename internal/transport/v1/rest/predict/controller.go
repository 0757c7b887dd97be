package predictcntrl

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/chup1x/carprice/internal/logger"
	predictserv "github.com/chup1x/carprice/internal/services/predict"
)

type pricePredictController struct {
	s         *predictserv.PricePredictionService
	validator *validator.Validate
}

func NewPricePredictController(s *predictserv.PricePredictionService) *pricePredictController {
	return &pricePredictController{
		s:         s,
		validator: validator.New(),
	}
}

func (p *pricePredictController) predictHandler(c *fiber.Ctx) error {
	var req carPricePredictRequest
	if err := c.BodyParser(&req); err != nil {
		return c.SendStatus(fiber.StatusUnprocessableEntity)
	}
	if err := p.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(errorResponse{Error: err.Error()})
	}

	price, err := p.s.PredictPrice(c.UserContext(), req.formState())
	if err != nil {
		log.Error().Err(err).Str("request_id", logger.RequestID(c)).Msg("error predicting price")
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{Error: "prediction failed"})
	}

	return c.JSON(carPricePredictResponse{PredictedPrice: price})
}
