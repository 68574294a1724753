// Package main provides the qpath CLI: route and schedule a gate-level
// circuit against a hardware coupling map described in YAML.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/qpath/circuit"
	"github.com/katalvlaran/qpath/coupling"
	"github.com/katalvlaran/qpath/placer"
	"github.com/katalvlaran/qpath/router"
	"github.com/katalvlaran/qpath/schedule"
	"github.com/katalvlaran/qpath/transpile"
)

// Version is the current qpath CLI version.
var Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "qpath",
	Short:         "qpath - qubit placement, routing, and timing",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	flagTopology  string
	flagCircuit   string
	flagDurations string
	flagPolicy    string
	flagDelay     int
	flagSeed      int64
	flagFactor    float64
	flagVerbose   bool
)

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Route and schedule a circuit on a coupling map",
	Long: `Route reads a YAML topology and a YAML circuit, inserts the SWAPs
needed to make every two-qubit gate act on coupled qubits, schedules
the result against a YAML duration table, and prints the timed
operation sequence together with the final layout and swap count.`,
	RunE: runRoute,
}

func init() {
	routeCmd.Flags().StringVar(&flagTopology, "topology", "", "YAML topology file (required)")
	routeCmd.Flags().StringVar(&flagCircuit, "circuit", "", "YAML circuit file (required)")
	routeCmd.Flags().StringVar(&flagDurations, "durations", "", "YAML gate-duration table (required)")
	routeCmd.Flags().StringVar(&flagPolicy, "policy", "asap", "scheduling policy: asap or alap")
	routeCmd.Flags().IntVar(&flagDelay, "delay", 0, "fixed delay between dependent operations")
	routeCmd.Flags().Int64Var(&flagSeed, "seed", 0, "seed for shortest-path tie-breaking")
	routeCmd.Flags().Float64Var(&flagFactor, "max-swaps-factor", router.DefaultMaxSwapsFactor,
		"swap budget as a multiple of circuit length (0 disallows swaps)")
	routeCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "log pass progress")
	_ = routeCmd.MarkFlagRequired("topology")
	_ = routeCmd.MarkFlagRequired("circuit")
	_ = routeCmd.MarkFlagRequired("durations")

	rootCmd.AddCommand(routeCmd)
}

// topologyFile is the YAML shape of a coupling map.
type topologyFile struct {
	Qubits []int    `yaml:"qubits"`
	Edges  [][2]int `yaml:"edges"`
}

// gateEntry is one gate of a circuitFile.
type gateEntry struct {
	Name   string `yaml:"name"`
	Qubits []int  `yaml:"qubits"`
}

// circuitFile is the YAML shape of a logical circuit, with an optional
// explicit logical→physical layout.
type circuitFile struct {
	NQubits int         `yaml:"nqubits"`
	Gates   []gateEntry `yaml:"gates"`
	Layout  map[int]int `yaml:"layout"`
}

func loadTopology(path string) (*coupling.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var tf topologyFile
	if err = yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	g := coupling.New()
	for _, q := range tf.Qubits {
		if err = g.AddQubit(q); err != nil {
			return nil, err
		}
	}
	for _, e := range tf.Edges {
		// edges may introduce qubits not listed explicitly
		if err = g.AddQubit(e[0]); err != nil {
			return nil, err
		}
		if err = g.AddQubit(e[1]); err != nil {
			return nil, err
		}
		if err = g.Connect(e[0], e[1]); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func loadCircuit(path string) (*circuit.Circuit, map[int]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	var cf circuitFile
	if err = yaml.Unmarshal(data, &cf); err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	c, err := circuit.NewCircuit(cf.NQubits)
	if err != nil {
		return nil, nil, err
	}
	for _, e := range cf.Gates {
		g, err := circuit.New(e.Name, e.Qubits...)
		if err != nil {
			return nil, nil, err
		}
		if err = c.Add(g); err != nil {
			return nil, nil, err
		}
	}

	return c, cf.Layout, nil
}

func runRoute(cmd *cobra.Command, _ []string) error {
	g, err := loadTopology(flagTopology)
	if err != nil {
		return err
	}
	c, customLayout, err := loadCircuit(flagCircuit)
	if err != nil {
		return err
	}
	durData, err := os.ReadFile(flagDurations)
	if err != nil {
		return err
	}
	durations, err := schedule.LoadDurations(durData)
	if err != nil {
		return err
	}
	policy, err := schedule.ParsePolicy(flagPolicy)
	if err != nil {
		return err
	}

	logger := zap.NewNop()
	if flagVerbose {
		if logger, err = zap.NewDevelopment(); err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()
	}

	p := placer.Trivial()
	if customLayout != nil {
		p = placer.Custom(customLayout)
	}
	routerOpts := []router.Option{router.WithMaxSwapsFactor(flagFactor)}
	if cmd.Flags().Changed("seed") {
		routerOpts = append(routerOpts, router.WithSeed(flagSeed))
	}

	pipeline := transpile.NewPipeline(
		transpile.WithPlacer(p),
		transpile.WithRouterOptions(routerOpts...),
		transpile.WithDurations(durations),
		transpile.WithScheduleOptions(schedule.WithPolicy(policy), schedule.WithDelay(flagDelay)),
		transpile.WithLogger(logger),
	)
	res, err := pipeline.Run(c, g)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-6s %-18s %8s %8s\n", "#", "gate", "start", "end")
	for i, op := range res.Schedule {
		fmt.Fprintf(out, "%-6d %-18s %8d %8d\n", i, op.Gate.String(), op.Start, op.End)
	}
	fmt.Fprintf(out, "\nswaps inserted: %d\n", res.SwapCount)
	fmt.Fprintf(out, "makespan:       %d\n", schedule.Makespan(res.Schedule))
	fmt.Fprintf(out, "final layout:   ")
	for l, phys := range res.Final {
		if l > 0 {
			fmt.Fprint(out, " ")
		}
		fmt.Fprintf(out, "%d→%d", l, phys)
	}
	fmt.Fprintln(out)

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
