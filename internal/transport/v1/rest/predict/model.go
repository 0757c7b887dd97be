package predictcntrl

import "github.com/chup1x/carprice/internal/domain"

type carPricePredictRequest struct {
	RegistrationYear  *float64 `json:"registration_year" validate:"required"`
	KmsDriven         *float64 `json:"kms_driven" validate:"required"`
	ManufacturingYear *float64 `json:"manufacturing_year" validate:"required"`
	Mileage           *float64 `json:"mileage" validate:"required"`
	Engine            *float64 `json:"engine" validate:"required"`
	MaxPower          *float64 `json:"max_power" validate:"required"`
	Torque            *float64 `json:"torque" validate:"required"`
}

func (r *carPricePredictRequest) formState() domain.CarFormState {
	return domain.CarFormState{
		domain.RegistrationYear:  *r.RegistrationYear,
		domain.KmsDriven:         *r.KmsDriven,
		domain.ManufacturingYear: *r.ManufacturingYear,
		domain.Mileage:           *r.Mileage,
		domain.Engine:            *r.Engine,
		domain.MaxPower:          *r.MaxPower,
		domain.Torque:            *r.Torque,
	}
}

type carPricePredictResponse struct {
	PredictedPrice float64 `json:"predicted_price"`
}

type errorResponse struct {
	Error string `json:"error"`
}
