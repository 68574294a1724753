package schedule_test

import (
	"fmt"

	"github.com/katalvlaran/qpath/circuit"
	"github.com/katalvlaran/qpath/schedule"
)

// ExampleSchedule times a two-gate circuit as soon as possible: the
// two-qubit gate starts once its qubit is free.
func ExampleSchedule() {
	c := circuit.MustNew(2)
	_ = c.Add(circuit.Single("h", 0))
	_ = c.Add(circuit.Two("cz", 0, 1))

	d := schedule.Durations{"h": 40, "cz": 80}
	ops, _ := schedule.Schedule(c, d)
	for _, op := range ops {
		fmt.Printf("%s [%d,%d)\n", op.Gate, op.Start, op.End)
	}
	// Output:
	// h(0) [0,40)
	// cz(0,1) [40,120)
}
