package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type Field string

const (
	RegistrationYear  Field = "registration_year"
	KmsDriven         Field = "kms_driven"
	ManufacturingYear Field = "manufacturing_year"
	Mileage           Field = "mileage"
	Engine            Field = "engine"
	MaxPower          Field = "max_power"
	Torque            Field = "torque"
)

// Fields lists every form field in display order.
var Fields = []Field{
	RegistrationYear,
	KmsDriven,
	ManufacturingYear,
	Mileage,
	Engine,
	MaxPower,
	Torque,
}

var fieldLabels = map[Field]string{
	RegistrationYear:  "Registration Year",
	KmsDriven:         "Kilometers Driven",
	ManufacturingYear: "Manufacturing Year",
	Mileage:           "Mileage (kmpl)",
	Engine:            "Engine (cc)",
	MaxPower:          "Max Power (bhp)",
	Torque:            "Torque (Nm)",
}

var ErrUnknownField = errors.New("unknown field")

func (f Field) Label() string {
	return fieldLabels[f]
}

func ParseField(name string) (Field, error) {
	f := Field(name)
	if _, ok := fieldLabels[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
	}

	return f, nil
}

// ParseFieldValue never fails: input that is not a number yields NaN.
func ParseFieldValue(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return math.NaN()
	}

	return v
}

// CarFormState holds one value per field. Treat it as immutable and use With
// to derive an updated copy.
type CarFormState map[Field]float64

func DefaultCarFormState() CarFormState {
	return CarFormState{
		RegistrationYear:  2024,
		KmsDriven:         50000,
		ManufacturingYear: 2019,
		Mileage:           15,
		Engine:            1500,
		MaxPower:          100,
		Torque:            200,
	}
}

func (s CarFormState) Get(f Field) float64 {
	return s[f]
}

func (s CarFormState) With(f Field, value float64) (CarFormState, error) {
	if _, ok := fieldLabels[f]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, f)
	}

	next := make(CarFormState, len(Fields))
	for _, field := range Fields {
		next[field] = s[field]
	}
	next[f] = value

	return next, nil
}

// Complete reports whether all fields are present.
func (s CarFormState) Complete() bool {
	for _, f := range Fields {
		if _, ok := s[f]; !ok {
			return false
		}
	}

	return true
}

func (s CarFormState) PredictionRequest() *CarPredictionRequest {
	return &CarPredictionRequest{
		RegistrationYear:  Number(s[RegistrationYear]),
		KmsDriven:         Number(s[KmsDriven]),
		ManufacturingYear: Number(s[ManufacturingYear]),
		Mileage:           Number(s[Mileage]),
		Engine:            Number(s[Engine]),
		MaxPower:          Number(s[MaxPower]),
		Torque:            Number(s[Torque]),
	}
}
