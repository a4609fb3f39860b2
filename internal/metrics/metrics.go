// Package metrics provides Prometheus instrumentation for the fraud engine
// and the outcome-counter sinks the scoring service reports to.
package metrics

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "fraud"

// Sink receives one outcome per evaluated transaction.
type Sink interface {
	RecordOutcome(ctx context.Context, blocked bool) error
}

// Prometheus exposes fraud_blocked_total and fraud_approved_total.
type Prometheus struct {
	blocked  prometheus.Counter
	approved prometheus.Counter
}

func NewPrometheus(reg prometheus.Registerer) (*Prometheus, error) {
	p := &Prometheus{
		blocked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blocked_total",
			Help:      "Total transactions flagged as fraud.",
		}),
		approved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "approved_total",
			Help:      "Total transactions not flagged as fraud (approved or sent to review).",
		}),
	}

	for _, c := range []prometheus.Collector{p.blocked, p.approved} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *Prometheus) RecordOutcome(_ context.Context, blocked bool) error {
	if blocked {
		p.blocked.Inc()
	} else {
		p.approved.Inc()
	}
	return nil
}

// Multi fans an outcome out to every sink and joins their errors.
type Multi []Sink

func (m Multi) RecordOutcome(ctx context.Context, blocked bool) error {
	var errs []error
	for _, s := range m {
		if err := s.RecordOutcome(ctx, blocked); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
