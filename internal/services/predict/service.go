package predictserv

import (
	"context"
	"fmt"

	"github.com/chup1x/carprice/internal/domain"
)

type PricePredictionService struct {
	client *pricePredictionClient
}

func NewPricePredictionService(client *pricePredictionClient) *PricePredictionService {
	return &PricePredictionService{
		client: client,
	}
}

func (s *PricePredictionService) PredictPrice(ctx context.Context, state domain.CarFormState) (float64, error) {
	price, err := s.client.predictPrice(ctx, state.PredictionRequest())
	if err != nil {
		return 0, fmt.Errorf("to predict price: %w", err)
	}

	return price, nil
}
