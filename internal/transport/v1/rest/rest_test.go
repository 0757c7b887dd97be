package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/chup1x/carprice/internal/config"
	predictserv "github.com/chup1x/carprice/internal/services/predict"
)

func newTestApp(t *testing.T, status int, reply string) *fiber.App {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		io.WriteString(w, reply)
	}))
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		Session: config.SessionConfig{Expiration: time.Hour},
	}
	client := predictserv.NewPricePredictionClient(srv.URL, 0)

	return newApp(cfg, predictserv.NewPricePredictionService(client))
}

const fullBody = `{"registration_year":2020,"kms_driven":30000,"manufacturing_year":2019,` +
	`"mileage":18.5,"engine":1197,"max_power":82,"torque":113}`

func TestPredictAPI_OK(t *testing.T) {
	app := newTestApp(t, http.StatusOK, `{"predicted_price": 5.25}`)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/car/predict", strings.NewReader(fullBody))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var out struct {
		PredictedPrice float64 `json:"predicted_price"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.PredictedPrice != 5.25 {
		t.Errorf("expected 5.25, got %v", out.PredictedPrice)
	}
}

func TestPredictAPI_MissingField(t *testing.T) {
	app := newTestApp(t, http.StatusOK, `{"predicted_price": 5.25}`)

	body := `{"registration_year":2020,"kms_driven":0}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/car/predict", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}
}

func TestPredictAPI_BadJSON(t *testing.T) {
	app := newTestApp(t, http.StatusOK, `{"predicted_price": 5.25}`)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/car/predict", strings.NewReader(`{invalid-json}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}
}

func TestPredictAPI_UpstreamFailure(t *testing.T) {
	app := newTestApp(t, http.StatusInternalServerError, `oops`)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/car/predict", strings.NewReader(fullBody))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app test: %v", err)
	}
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
}

func TestFormPage_Served(t *testing.T) {
	app := newTestApp(t, http.StatusOK, `{"predicted_price": 1}`)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	if err != nil {
		t.Fatalf("app test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("unexpected content type %q", ct)
	}
	if resp.Header.Get("X-Request-Id") == "" {
		t.Error("expected a request id header")
	}
}

func TestServer_ShutdownBeforeStart(t *testing.T) {
	if err := New().Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
