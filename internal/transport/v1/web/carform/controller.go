package carformcntrl

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/rs/zerolog/log"

	"github.com/chup1x/carprice/internal/logger"
	predictserv "github.com/chup1x/carprice/internal/services/predict"
)

type carFormController struct {
	s     *predictserv.PricePredictionService
	store *session.Store
}

func NewCarFormController(s *predictserv.PricePredictionService, store *session.Store) *carFormController {
	return &carFormController{
		s:     s,
		store: store,
	}
}

func (f *carFormController) pageHandler(c *fiber.Ctx) error {
	sess, err := f.store.Get(c)
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	view := newPageView(loadFormState(sess), loadPredictedPrice(sess))
	if err := sess.Save(); err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	c.Type("html", "utf-8")
	return renderPage(c, view)
}

func (f *carFormController) fieldHandler(c *fiber.Ctx) error {
	sess, err := f.store.Get(c)
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	state, applied, err := applyFieldEdits(loadFormState(sess), c.Request().PostArgs())
	if err != nil || applied == 0 {
		return c.SendStatus(fiber.StatusUnprocessableEntity)
	}

	sess.Set(formStateKey, state)
	if err := sess.Save(); err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (f *carFormController) submitHandler(c *fiber.Ctx) error {
	sess, err := f.store.Get(c)
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	state, _, err := applyFieldEdits(loadFormState(sess), c.Request().PostArgs())
	if err != nil {
		return c.SendStatus(fiber.StatusUnprocessableEntity)
	}
	sess.Set(formStateKey, state)

	price, err := f.s.PredictPrice(c.UserContext(), state)
	if err != nil {
		log.Error().Err(err).Str("request_id", logger.RequestID(c)).Msg("error predicting price")
	} else {
		sess.Set(predictedPriceKey, price)
	}

	view := newPageView(state, loadPredictedPrice(sess))
	if err := sess.Save(); err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	c.Type("html", "utf-8")
	return renderPage(c, view)
}
