package schedule

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/qpath/circuit"
)

// Durations maps gate names to nominal durations in the scheduler's
// integer time unit. It is owned by the surrounding configuration
// subsystem and queried read-only here.
type Durations map[string]int

// LoadDurations parses a YAML document of the form
//
//	rx: 40
//	cz: 80
//	swap: 240
//
// into a Durations table. Negative entries are rejected with
// ErrNegativeDuration naming the gate.
func LoadDurations(data []byte) (Durations, error) {
	var d Durations
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("schedule: parsing durations: %w", err)
	}
	for name, v := range d {
		if v < 0 {
			return nil, fmt.Errorf("%w: %q is %d", ErrNegativeDuration, name, v)
		}
	}

	return d, nil
}

// Of returns g's nominal duration. Barriers are structural and take
// zero time without a table entry. Any other gate absent from the
// table is ErrUnknownDuration naming the gate.
func (d Durations) Of(g circuit.Gate) (int, error) {
	if v, ok := d[g.Name()]; ok {
		if v < 0 {
			return 0, fmt.Errorf("%w: %q is %d", ErrNegativeDuration, g.Name(), v)
		}
		return v, nil
	}
	if g.Kind() == circuit.KindBarrier {
		return 0, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownDuration, g.Name())
}
