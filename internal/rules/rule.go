// Package rules holds the fraud rule model, its JSON loader and the
// stateless scoring engine.
package rules

import (
	"fmt"
	"strings"
)

// Kind selects the predicate a rule evaluates.
type Kind string

const (
	KindVelocityCheck   Kind = "velocity_check"
	KindAmountAnomaly   Kind = "amount_anomaly"
	KindUnknownDevice   Kind = "unknown_device"
	KindUnknownLocation Kind = "unknown_location"
	KindHighAmount      Kind = "high_amount"
)

// Kinds returns every supported rule kind.
func Kinds() []Kind {
	return []Kind{KindVelocityCheck, KindAmountAnomaly, KindUnknownDevice, KindUnknownLocation, KindHighAmount}
}

func (k Kind) IsValid() bool {
	for _, known := range Kinds() {
		if k == known {
			return true
		}
	}
	return false
}

func (k *Kind) UnmarshalText(text []byte) error {
	v := Kind(strings.ToLower(string(text)))
	if !v.IsValid() {
		return fmt.Errorf("unknown rule type %q", string(text))
	}
	*k = v
	return nil
}

// Action is what a fired rule asks the caller to do.
type Action string

const (
	ActionBlock  Action = "block"
	ActionReview Action = "review"
	ActionAlert  Action = "alert"
)

func (a Action) IsValid() bool {
	return a == ActionBlock || a == ActionReview || a == ActionAlert
}

func (a *Action) UnmarshalText(text []byte) error {
	v := Action(strings.ToLower(string(text)))
	if !v.IsValid() {
		return fmt.Errorf("unknown rule action %q", string(text))
	}
	*a = v
	return nil
}

// Rule is a single configured scoring rule. Threshold meaning depends on Kind:
// a count for velocity_check, a multiplier of the user's average for
// amount_anomaly, an absolute amount for high_amount; unused otherwise.
type Rule struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Kind        Kind    `json:"rule_type"`
	Threshold   float64 `json:"threshold"`
	RiskScore   float64 `json:"risk_score"`
	Action      Action  `json:"action"`
}

// Config is the on-disk rule document.
type Config struct {
	Rules []Rule `json:"rules"`
}
