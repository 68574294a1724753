package transpile

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/qpath/circuit"
	"github.com/katalvlaran/qpath/layout"
)

// record pairs a pass name with the circuit snapshot it produced.
type record struct {
	pass    string
	circuit *circuit.Circuit
}

// Context accumulates pass outputs and metrics across one
// transpilation run. It grows monotonically — records and metric keys
// are only ever added — and is discarded with the run. Context does no
// validation of its own; it cannot fail by construction.
type Context struct {
	// RunID distinguishes concurrent runs in logs and diagnostics.
	RunID string

	records []record
	metrics map[string]float64

	// FinalLayout is the frozen layout reported once routing completes.
	FinalLayout layout.Layout
}

// NewContext creates an empty context with a fresh run ID.
func NewContext() *Context {
	return &Context{
		RunID:   uuid.NewString(),
		metrics: make(map[string]float64),
	}
}

// Record appends the circuit snapshot produced by the named pass.
// Pass names are unique per run by construction, so earlier records
// are never overwritten.
func (c *Context) Record(pass string, snapshot *circuit.Circuit) {
	c.records = append(c.records, record{pass: pass, circuit: snapshot})
}

// Snapshot returns the circuit recorded by the named pass, or nil if
// that pass never ran.
func (c *Context) Snapshot(pass string) *circuit.Circuit {
	for _, r := range c.records {
		if r.pass == pass {
			return r.circuit
		}
	}

	return nil
}

// Passes returns the recorded pass names in execution order.
func (c *Context) Passes() []string {
	out := make([]string, len(c.records))
	for i, r := range c.records {
		out[i] = r.pass
	}

	return out
}

// RecordMetric adds a named metric value.
func (c *Context) RecordMetric(key string, v float64) {
	c.metrics[key] = v
}

// Metric returns the named metric and whether it was recorded.
func (c *Context) Metric(key string) (float64, bool) {
	v, ok := c.metrics[key]

	return v, ok
}
