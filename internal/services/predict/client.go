package predictserv

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/chup1x/carprice/internal/domain"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected status from prediction service")
	ErrNoPrediction     = errors.New("response has no predicted_price")
)

type pricePredictionClient struct {
	url    string
	client *http.Client
}

// NewPricePredictionClient posts to url. A zero timeout means the client
// waits as long as the caller's context allows.
func NewPricePredictionClient(url string, timeout time.Duration) *pricePredictionClient {
	return &pricePredictionClient{
		client: &http.Client{
			Timeout: timeout,
		},
		url: url,
	}
}

func (c *pricePredictionClient) predictPrice(ctx context.Context, body *domain.CarPredictionRequest) (float64, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return 0, fmt.Errorf("marshal json body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("to get a response from prediction service: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, res.Body)
		return 0, fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
	}

	var resBody domain.CarPredictionResponse
	if err := json.NewDecoder(res.Body).Decode(&resBody); err != nil {
		return 0, fmt.Errorf("to decode a json body: %w", err)
	}
	if resBody.PredictedPrice == nil {
		return 0, ErrNoPrediction
	}

	return *resBody.PredictedPrice, nil
}
