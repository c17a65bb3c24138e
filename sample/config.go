// Package sample is the synthetic message generator (spec.md §4.7): given a
// message type and a MessageConfig, it produces a typed, schema-valid
// mt.Message. Grounded on the teacher's options package (options/options.go),
// which walks a descriptor-shaped configuration and applies overrides field
// by field — the same shape MessageConfig/FieldConfig walk here, generalized
// from "interpret compiler options" to "choose or override a sample value."
package sample

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Scenario selects which optional fields, option variants and instruction
// codes a generated message carries, per spec.md §4.7.
type Scenario string

const (
	ScenarioStandard Scenario = "standard"
	ScenarioMinimal  Scenario = "minimal"
	ScenarioFull     Scenario = "full"
	ScenarioSTP      Scenario = "stp"
	ScenarioCover    Scenario = "cover"
	ScenarioReject   Scenario = "reject"
	ScenarioReturn   Scenario = "return"
)

// LengthRange constrains a generated string's length within the format's own
// bounds.
type LengthRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// AmountRange constrains a generated decimal amount, and optionally locks its
// currency.
type AmountRange struct {
	Min      string `json:"min"`
	Max      string `json:"max"`
	Currency string `json:"currency,omitempty"`
}

// FieldConfig is one override entry in MessageConfig.FieldOverrides. Exactly
// one of its members is expected to be set; Fixed takes precedence if more
// than one is, since it is the most specific instruction a caller can give.
type FieldConfig struct {
	Fixed   *string      `json:"fixed,omitempty"`
	Length  *LengthRange `json:"length,omitempty"`
	Range   *AmountRange `json:"range,omitempty"`
	Pattern *string      `json:"pattern,omitempty"`
}

// MessageConfig parameterizes one call to Generate, per spec.md §4.7/§6.
type MessageConfig struct {
	Scenario       Scenario               `json:"scenario,omitempty"`
	Variables      map[string]any         `json:"variables,omitempty"`
	FieldOverrides map[string]FieldConfig `json:"field_overrides,omitempty"`
	Seed           *uint64                `json:"seed,omitempty"`
}

// LoadConfigJSON decodes a MessageConfig from JSON, rejecting unknown keys at
// load time (spec.md §9's resolved open question on strict config parsing).
func LoadConfigJSON(r io.Reader) (MessageConfig, error) {
	var cfg MessageConfig
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return MessageConfig{}, fmt.Errorf("sample: decode config: %w", err)
	}
	return cfg, nil
}

// LoadConfigYAML decodes a MessageConfig from YAML, the alternate
// scenario-authoring format named in SPEC_FULL's domain-stack wiring (JSON
// remains the wire contract; YAML is a load-time convenience only).
func LoadConfigYAML(data []byte) (MessageConfig, error) {
	var cfg MessageConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return MessageConfig{}, fmt.Errorf("sample: decode yaml config: %w", err)
	}
	return cfg, nil
}
