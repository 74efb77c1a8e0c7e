package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultScaleSteps is the scale ladder searched when multi-scale matching is
// enabled and the caller did not supply an explicit list.
var DefaultScaleSteps = []float64{1.0, 0.9, 0.8, 0.7, 0.6, 0.5}

const (
	defaultConfidence = 0.80
	defaultLimit      = 100
)

// MatchConfig holds the per-search matching parameters. Fields may be loaded
// from a JSON file, set through the With* methods, or filled in by Normalize.
type MatchConfig struct {
	SearchMultipleScales bool      `json:"search_multiple_scales"`
	UseGrayscale         bool      `json:"use_grayscale"`
	ScaleSteps           []float64 `json:"scale_steps"`
	Confidence           float64   `json:"confidence"`
	Limit                int       `json:"limit"`
}

// DefaultConfig returns a MatchConfig populated with standard defaults.
func DefaultConfig() *MatchConfig {
	return &MatchConfig{
		SearchMultipleScales: true,
		UseGrayscale:         false,
		ScaleSteps:           append([]float64(nil), DefaultScaleSteps...),
		Confidence:           defaultConfidence,
		Limit:                defaultLimit,
	}
}

// ValidationError reports a malformed configuration field. It is returned
// before any capture or matching work happens.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: invalid %s: %s", e.Field, e.Msg)
}

// Normalize resolves a partially specified configuration into a fully
// defaulted, validated copy. A nil argument yields pure defaults. The input
// is never mutated.
//
// Go zero values cannot distinguish "unset" from "explicitly zero", so only
// nil ScaleSteps and a zero Limit are treated as unset; Confidence 0 is a
// legal explicit threshold. Callers wanting defaults-plus-overrides should
// start from DefaultConfig.
func Normalize(c *MatchConfig) (*MatchConfig, error) {
	if c == nil {
		return DefaultConfig(), nil
	}
	out := *c
	if c.ScaleSteps != nil {
		// Copy so neither side can mutate the other. An explicit empty
		// slice is preserved and rejected below; only nil means unset.
		out.ScaleSteps = append([]float64{}, c.ScaleSteps...)
	} else {
		out.ScaleSteps = append([]float64(nil), DefaultScaleSteps...)
	}
	if out.Limit == 0 {
		out.Limit = defaultLimit
	}
	if err := out.validate(); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *MatchConfig) validate() error {
	if c.Confidence < 0 || c.Confidence > 1 {
		return &ValidationError{Field: "confidence", Msg: fmt.Sprintf("%v outside [0,1]", c.Confidence)}
	}
	if c.Limit <= 0 {
		return &ValidationError{Field: "limit", Msg: fmt.Sprintf("%d is not positive", c.Limit)}
	}
	if c.SearchMultipleScales {
		if len(c.ScaleSteps) == 0 {
			return &ValidationError{Field: "scale_steps", Msg: "empty with multi-scale search enabled"}
		}
		for _, s := range c.ScaleSteps {
			if s <= 0 {
				return &ValidationError{Field: "scale_steps", Msg: fmt.Sprintf("non-positive step %v", s)}
			}
		}
	}
	return nil
}

// WithMultiScale sets SearchMultipleScales and returns the config.
func (c *MatchConfig) WithMultiScale(enabled bool) *MatchConfig {
	c.SearchMultipleScales = enabled
	return c
}

// WithGrayscale sets UseGrayscale and returns the config.
func (c *MatchConfig) WithGrayscale(enabled bool) *MatchConfig {
	c.UseGrayscale = enabled
	return c
}

// WithScaleSteps replaces the scale ladder and returns the config.
func (c *MatchConfig) WithScaleSteps(steps []float64) *MatchConfig {
	c.ScaleSteps = steps
	return c
}

// WithConfidence sets the minimum confidence, clamped to [0,1], and returns
// the config.
func (c *MatchConfig) WithConfidence(confidence float64) *MatchConfig {
	if confidence < 0 {
		confidence = 0
	} else if confidence > 1 {
		confidence = 1
	}
	c.Confidence = confidence
	return c
}

// WithLimit sets the maximum result count and returns the config.
func (c *MatchConfig) WithLimit(limit int) *MatchConfig {
	c.Limit = limit
	return c
}

// Load reads a configuration from a JSON file. A missing file yields
// DefaultConfig without error; a present but malformed file returns the
// decode error alongside defaults.
func Load(path string) (*MatchConfig, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// Save writes the configuration to path as indented JSON.
func (c *MatchConfig) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
