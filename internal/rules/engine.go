package rules

import (
	"math"

	"fraud-engine/internal/models"
)

// Engine evaluates a fixed, ordered rule set. It holds no mutable state and
// is safe for concurrent use.
type Engine struct {
	rules []Rule
}

func NewEngine(rules []Rule) *Engine {
	cp := make([]Rule, len(rules))
	copy(cp, rules)
	return &Engine{rules: cp}
}

// Rules returns a copy of the configured rule set in evaluation order.
func (e *Engine) Rules() []Rule {
	cp := make([]Rule, len(e.rules))
	copy(cp, e.rules)
	return cp
}

// Evaluate runs every rule against the transaction and returns the normalized
// risk score and the names of fired rules in rule-set order.
//
// The score is the sum of fired contributions divided by the total number of
// configured rules (not the number fired), capped at 1.0. An empty rule set
// scores 0.
func (e *Engine) Evaluate(tx models.Transaction, profile *models.UserProfile, recentCount int64) (float64, []string) {
	triggered := make([]string, 0)
	if len(e.rules) == 0 {
		return 0, triggered
	}

	var total float64
	for _, rule := range e.rules {
		if Matches(rule, tx, profile, recentCount) {
			total += rule.RiskScore
			triggered = append(triggered, rule.Name)
		}
	}

	return math.Min(1.0, total/float64(len(e.rules))), triggered
}

// ShouldBlock reports whether any triggered name resolves to a block rule.
func (e *Engine) ShouldBlock(triggered []string) bool {
	return e.HasAction(triggered, ActionBlock)
}

// HasAction reports whether any triggered name resolves, first match by name,
// to a rule with the given action. Unknown names never match.
func (e *Engine) HasAction(triggered []string, action Action) bool {
	for _, name := range triggered {
		if rule, ok := e.byName(name); ok && rule.Action == action {
			return true
		}
	}
	return false
}

func (e *Engine) byName(name string) (Rule, bool) {
	for _, r := range e.rules {
		if r.Name == name {
			return r, true
		}
	}
	return Rule{}, false
}

// Matches evaluates the kind-specific predicate of a single rule.
func Matches(rule Rule, tx models.Transaction, profile *models.UserProfile, recentCount int64) bool {
	switch rule.Kind {
	case KindVelocityCheck:
		return float64(recentCount) > rule.Threshold
	case KindAmountAnomaly:
		return profile.AvgTransactionAmount > 0 &&
			tx.Amount > profile.AvgTransactionAmount*rule.Threshold
	case KindUnknownDevice:
		return len(profile.KnownDevices) > 0 && !profile.HasDevice(tx.DeviceID)
	case KindUnknownLocation:
		return len(profile.KnownLocations) > 0 && !profile.HasLocation(tx.Location)
	case KindHighAmount:
		return tx.Amount > rule.Threshold
	default:
		return false
	}
}
