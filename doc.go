// Package pressure computes the largest pressure release achievable in a
// network of valves joined by one-minute tunnels.
//
// What is inside?
//
//	valve/    — Valve and the immutable, validated Network
//	parse/    — line parser for "Valve AA has flow rate=0; tunnels lead to …"
//	distance/ — all-sources BFS distance table (minutes between valves)
//	planner/  — exhaustive single-actor search with a bitmask opened-set
//	dual/     — two-actor orchestrator over every split of the flow valves
//	config/   — viper-backed settings (start valve, budgets, workers, logging)
//	cmd/      — the `pressure` CLI
//
// Quick ASCII example:
//
//	AA(0) ── BB(3) ── CC(10)
//
// With 4 minutes one actor walks two tunnels to CC, opens it, and holds
// 10/min for the last minute: 10. Opening BB on the way would leave no time
// for CC.
//
// The two entry points mirror the two planning modes:
//
//	single, err := pressure.BestSingleAgentRelease(net, pressure.DefaultStart, pressure.SingleAgentMinutes)
//	both, err := pressure.BestDualAgentRelease(ctx, net, pressure.DefaultStart, pressure.DualAgentMinutes)
package pressure
