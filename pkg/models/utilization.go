package models

import (
	"encoding/json"
	"fmt"
)

// UtilizationModel maps elapsed simulation time (seconds) to the fraction of a
// cloudlet's requested CPU, RAM and bandwidth that is actually consumed.
type UtilizationModel interface {
	Utilization(elapsed float64) float64
}

// ConstantUtilization consumes the same fraction at every instant. The fraction
// is fixed at construction; a single instance is shared by every cloudlet of a
// scenario.
type ConstantUtilization struct {
	fraction float64
}

// NewConstantUtilization returns a model reporting fraction, which must lie in (0, 1].
func NewConstantUtilization(fraction float64) (*ConstantUtilization, error) {
	if !(fraction > 0 && fraction <= 1) {
		return nil, fmt.Errorf("utilization fraction must be in (0, 1], got %v", fraction)
	}
	return &ConstantUtilization{fraction: fraction}, nil
}

// Utilization implements UtilizationModel.
func (u *ConstantUtilization) Utilization(float64) float64 {
	return u.fraction
}

// Fraction returns the configured fraction.
func (u *ConstantUtilization) Fraction() float64 {
	return u.fraction
}

type utilizationDoc struct {
	Type     string  `json:"type" yaml:"type"`
	Fraction float64 `json:"fraction" yaml:"fraction"`
}

func (u *ConstantUtilization) doc() utilizationDoc {
	return utilizationDoc{Type: "constant", Fraction: u.fraction}
}

// MarshalJSON encodes the model as {"type":"constant","fraction":f}.
func (u *ConstantUtilization) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.doc())
}

// MarshalYAML encodes the model as a type/fraction mapping.
func (u *ConstantUtilization) MarshalYAML() (any, error) {
	return u.doc(), nil
}
