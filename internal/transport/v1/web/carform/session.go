package carformcntrl

import (
	"encoding/gob"
	"fmt"

	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/chup1x/carprice/internal/domain"
)

const (
	formStateKey      = "form_state"
	predictedPriceKey = "predicted_price"
)

func init() {
	gob.Register(domain.CarFormState{})
}

func loadFormState(sess *session.Session) domain.CarFormState {
	state, ok := sess.Get(formStateKey).(domain.CarFormState)
	if !ok || !state.Complete() {
		return domain.DefaultCarFormState()
	}

	return state
}

func loadPredictedPrice(sess *session.Session) *float64 {
	price, ok := sess.Get(predictedPriceKey).(float64)
	if !ok {
		return nil
	}

	return &price
}

// formArgs is satisfied by fasthttp's parsed form arguments.
type formArgs interface {
	Has(key string) bool
	Peek(key string) []byte
}

// applyFieldEdits applies every field present in args, in display order.
func applyFieldEdits(state domain.CarFormState, args formArgs) (domain.CarFormState, int, error) {
	applied := 0
	for _, f := range domain.Fields {
		if !args.Has(string(f)) {
			continue
		}

		next, err := state.With(f, domain.ParseFieldValue(string(args.Peek(string(f)))))
		if err != nil {
			return nil, 0, fmt.Errorf("apply %s: %w", f, err)
		}
		state = next
		applied++
	}

	return state, applied, nil
}
