package domain

import (
	"math"
	"strconv"
)

// Number is a float that encodes NaN and ±Inf as JSON null instead of failing.
type Number float64

func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}

	return strconv.AppendFloat(nil, f, 'f', -1, 64), nil
}

type CarPredictionRequest struct {
	RegistrationYear  Number `json:"registration_year"`
	KmsDriven         Number `json:"kms_driven"`
	ManufacturingYear Number `json:"manufacturing_year"`
	Mileage           Number `json:"mileage(kmpl)"`
	Engine            Number `json:"engine(cc)"`
	MaxPower          Number `json:"max_power(bhp)"`
	Torque            Number `json:"torque(Nm)"`
}

type CarPredictionResponse struct {
	PredictedPrice *float64 `json:"predicted_price"`
}
