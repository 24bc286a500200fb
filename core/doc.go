// Package core provides the immutable data model every numeric package in
// syscurve computes over: pipes, fittings, and the Network that groups them.
//
// The model N = (P, F) is deliberately minimal:
//
//   - Pipe — one segment of the series path: length, diameter, equivalent
//     roughness, and a precomputed Reynolds number.
//   - Fitting — one minor-loss contributor: diameter and k-factor.
//   - Network — ordered collections of both, validated on construction.
//
// Why eager validation?
//
//   - Every downstream formula divides by a diameter or takes the square
//     root/logarithm of a derived quantity. A zero or negative input is a
//     configuration mistake, and the cheapest place to catch it is before a
//     single sample is computed — a bad network never partially produces a
//     curve.
//   - Once a *Network exists, the numeric layers can assume its invariants
//     and skip per-sample guard code.
//
// Why immutability?
//
//   - Curve sweeps read the same network at many flow rates, and callers may
//     fan samples out across goroutines. Value-type records plus copying
//     accessors make that safe without any locking.
//
// Invariants enforced by NewPipe / NewFitting / NewNetwork:
//
//	– IDs are non-empty and unique per kind within a Network.
//	– Length, Diameter, Reynolds > 0.
//	– Roughness, K ≥ 0 (zero means smooth pipe / lossless fitting).
//
// Iteration order of Pipes() and Fittings() is insertion order, so
// floating-point sums over a network are reproducible.
//
// See colebrook/ for the friction-factor solver, headloss/ for single-sample
// totals, and curve/ for full sweeps.
package core
