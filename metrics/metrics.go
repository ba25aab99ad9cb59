// Package metrics exports nestable list activity to Prometheus.
//
// A [Recorder] implements [nestable.Hooks]; attach it to any number of
// lists with [nestable.WithHooks] and the list name becomes the "list"
// label:
//
//	rec, err := metrics.NewRecorder(prometheus.DefaultRegisterer, "nestable")
//	todos, err := nestable.New(nil, newTodo, nestable.WithName("todos"), nestable.WithHooks(rec))
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hasbyte1/go-nestable/nestable"
)

// Recorder counts constructions and transactions per list and tracks
// the number of live items.
type Recorder struct {
	constructed  *prometheus.CounterVec
	transactions *prometheus.CounterVec
	live         *prometheus.GaugeVec
}

var _ nestable.Hooks = (*Recorder)(nil)

// NewRecorder creates the collectors under namespace and registers them
// with reg. Registering twice against the same registry reuses the
// collectors already there, so several recorders can share one registry.
func NewRecorder(reg prometheus.Registerer, namespace string) (*Recorder, error) {
	r := &Recorder{
		constructed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "items_constructed_total",
			Help:      "Number of items built by a list constructor.",
		}, []string{"list"}),
		transactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transactions_total",
			Help:      "Number of list mutations, by operation.",
		}, []string{"list", "op"}),
		live: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "live_items",
			Help:      "Number of items currently held by a list.",
		}, []string{"list"}),
	}
	if reg == nil {
		return r, nil
	}

	var err error
	if r.constructed, err = register(reg, r.constructed); err != nil {
		return nil, err
	}
	if r.transactions, err = register(reg, r.transactions); err != nil {
		return nil, err
	}
	if r.live, err = register(reg, r.live); err != nil {
		return nil, err
	}
	return r, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		var zero C
		return zero, fmt.Errorf("metrics: register: %w", err)
	}
	return c, nil
}

// ItemConstructed implements [nestable.Hooks].
func (r *Recorder) ItemConstructed(list string) {
	r.constructed.WithLabelValues(list).Inc()
}

// Mutated implements [nestable.Hooks].
func (r *Recorder) Mutated(list string, op nestable.Op, added, removed int) {
	r.transactions.WithLabelValues(list, op.String()).Inc()
	r.live.WithLabelValues(list).Add(float64(added - removed))
}

// Collectors returns the underlying collectors, e.g. for
// [prometheus/testutil] or a custom registry.
func (r *Recorder) Collectors() []prometheus.Collector {
	return []prometheus.Collector{r.constructed, r.transactions, r.live}
}
