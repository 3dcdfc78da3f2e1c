package wellness

import (
	"errors"
	"fmt"
	"math"
)

const weightTolerance = 0.001

var (
	ErrWeightsSum      = errors.New("weights must sum to 1.0")
	ErrNegativeWeight  = errors.New("weights must not be negative")
	ErrNonFiniteWeight = errors.New("weights must be finite")
)

// Weights are the category shares of the total score.
type Weights struct {
	Metabolic       float64 `yaml:"metabolic" json:"metabolic" env:"METABOLIC"`
	VO2Max          float64 `yaml:"vo2max" json:"vo2Max" env:"VO2MAX"`
	GripStrength    float64 `yaml:"grip_strength" json:"gripStrength" env:"GRIP_STRENGTH"`
	BodyComposition float64 `yaml:"body_composition" json:"bodyComposition" env:"BODY_COMPOSITION"`
}

func DefaultWeights() Weights {
	return Weights{
		Metabolic:       0.40,
		VO2Max:          0.24,
		GripStrength:    0.12,
		BodyComposition: 0.24,
	}
}

func (w Weights) Sum() float64 {
	return w.Metabolic + w.VO2Max + w.GripStrength + w.BodyComposition
}

func (w Weights) Validate() error {
	for _, v := range w.asList() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNonFiniteWeight
		}
		if v < 0 {
			return fmt.Errorf("%w: %f", ErrNegativeWeight, v)
		}
	}
	if sum := w.Sum(); math.Abs(sum-1.0) > weightTolerance {
		return fmt.Errorf("%w: got %.4f", ErrWeightsSum, sum)
	}
	return nil
}

// IsZero reports whether no weight was set, e.g. an empty env block.
func (w Weights) IsZero() bool {
	return w == Weights{}
}

func (w Weights) asList() []float64 {
	return []float64{w.Metabolic, w.VO2Max, w.GripStrength, w.BodyComposition}
}
