// Package qpath turns logical quantum circuits into physically routed,
// time-scheduled operation sequences for a fixed hardware coupling map.
//
// 🚀 What is qpath?
//
//	A deterministic transpilation core that brings together:
//		• Coupling graphs: sparse physical qubit connectivity + BFS shortest paths
//		• Layouts: bijective logical→physical assignments with strict validation
//		• Placement: custom, trivial, or seeded-random initial layouts
//		• Routing: greedy SWAP insertion along shortest paths, under a swap budget
//		• Scheduling: qubit-disjoint layering with ASAP/ALAP timing policies
//		• Diagnostics: per-pass circuit snapshots, swap counts, final layouts
//
// ✨ Why choose qpath?
//
//   - Deterministic – all tie-breaking flows from an explicit seed
//   - Strict errors – every failure names the offending qubits or gate
//   - Single-writer layouts – passes hand the layout off, never share it
//   - Pure pipeline – no I/O, no retries, no hidden state
//
// Everything is organized under focused subpackages:
//
//	coupling/  — physical connectivity graph & shortest-path queries
//	circuit/   — gate sum type (single/two/swap/barrier) & circuit container
//	layout/    — logical→physical assignment & mapping validation
//	placer/    — initial layout strategies
//	router/    — SWAP-insertion routing pass
//	schedule/  — layering & ASAP/ALAP timing
//	transpile/ — pipeline glue & append-only diagnostics context
//	topology/  — Line/Ring/Star/Grid coupling constructors
//	cmd/qpath  — YAML-driven command-line front-end
//
// Quick ASCII example:
//
//	0───1───2        a two-qubit gate on physical 0 and 2 routes as
//	                 SWAP(0,1) (or SWAP(1,2)), then the gate on the pair.
//
// The scheduled operation list is the sole output artifact; pulse
// synthesis, instrument I/O, and calibration live outside this module.
//
//	go get github.com/katalvlaran/qpath
package qpath
