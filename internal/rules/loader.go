package rules

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"fraud-engine/internal/custom_err"
)

// LoadFile reads and validates a rule document from disk.
func LoadFile(path string) ([]Rule, error) {
	const op = "rules.LoadFile"

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, custom_err.ErrInvalidRuleConfig, err)
	}

	rules, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", op, path, err)
	}
	return rules, nil
}

// Parse decodes a rule document and validates every rule in it.
func Parse(r io.Reader) ([]Rule, error) {
	var cfg Config

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", custom_err.ErrInvalidRuleConfig, err)
	}
	if cfg.Rules == nil {
		return nil, fmt.Errorf("%w: missing \"rules\" list", custom_err.ErrInvalidRuleConfig)
	}

	if err := Validate(cfg.Rules); err != nil {
		return nil, err
	}
	return cfg.Rules, nil
}

// Validate checks the rule set for structural problems.
func Validate(rules []Rule) error {
	seen := make(map[string]struct{}, len(rules))

	for i, r := range rules {
		switch {
		case r.ID == "":
			return fmt.Errorf("%w: rule #%d has empty id", custom_err.ErrInvalidRuleConfig, i)
		case r.Name == "":
			return fmt.Errorf("%w: rule %q has empty name", custom_err.ErrInvalidRuleConfig, r.ID)
		case !r.Kind.IsValid():
			return fmt.Errorf("%w: rule %q has unknown rule_type %q", custom_err.ErrInvalidRuleConfig, r.ID, r.Kind)
		case !r.Action.IsValid():
			return fmt.Errorf("%w: rule %q has unknown action %q", custom_err.ErrInvalidRuleConfig, r.ID, r.Action)
		case math.IsNaN(r.Threshold) || math.IsInf(r.Threshold, 0):
			return fmt.Errorf("%w: rule %q has non-finite threshold", custom_err.ErrInvalidRuleConfig, r.ID)
		case math.IsNaN(r.RiskScore) || math.IsInf(r.RiskScore, 0) || r.RiskScore < 0:
			return fmt.Errorf("%w: rule %q has invalid risk_score %v", custom_err.ErrInvalidRuleConfig, r.ID, r.RiskScore)
		}

		if _, dup := seen[r.ID]; dup {
			return fmt.Errorf("%w: duplicate rule id %q", custom_err.ErrInvalidRuleConfig, r.ID)
		}
		seen[r.ID] = struct{}{}
	}
	return nil
}
