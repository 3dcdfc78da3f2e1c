package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/garrettladley/wellscore/internal/wellness"
	"gopkg.in/yaml.v3"
)

// LoadWeights reads a YAML weights file such as
//
//	metabolic: 0.40
//	vo2max: 0.24
//	grip_strength: 0.12
//	body_composition: 0.24
//
// Unknown keys are rejected and the result must pass Weights.Validate.
func LoadWeights(path string) (wellness.Weights, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return wellness.Weights{}, fmt.Errorf("reading weights file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var w wellness.Weights
	if err := dec.Decode(&w); err != nil {
		if errors.Is(err, io.EOF) {
			return wellness.Weights{}, fmt.Errorf("weights file %s is empty", path)
		}
		return wellness.Weights{}, fmt.Errorf("parsing weights file: %w", err)
	}

	if err := w.Validate(); err != nil {
		return wellness.Weights{}, fmt.Errorf("weights file %s: %w", path, err)
	}
	return w, nil
}

// ResolveWeights picks the weights file when set, then any WEIGHT_* values,
// then the defaults.
func (s Server) ResolveWeights() (wellness.Weights, error) {
	if s.WeightsFile != "" {
		return LoadWeights(s.WeightsFile)
	}
	if s.Weights.IsZero() {
		return wellness.DefaultWeights(), nil
	}
	if err := s.Weights.Validate(); err != nil {
		return wellness.Weights{}, fmt.Errorf("WEIGHT_* environment: %w", err)
	}
	return s.Weights, nil
}

// ResolveWeights loads WeightsFile when set, otherwise fallback if that file
// exists, otherwise the defaults.
func (c CLI) ResolveWeights(fallback string) (wellness.Weights, error) {
	if c.WeightsFile != "" {
		return LoadWeights(c.WeightsFile)
	}
	if fallback != "" {
		if _, err := os.Stat(fallback); err == nil {
			return LoadWeights(fallback)
		}
	}
	return wellness.DefaultWeights(), nil
}
