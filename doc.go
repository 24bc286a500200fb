// Package syscurve turns a description of a piping network — pipes plus the
// valves, elbows and tees hanging off them — into the system head curve you
// lay over a pump curve to find the operating point.
//
// 🚀 What is syscurve?
//
//	A small, pure-Go hydraulic toolkit built from composable pieces:
//		• Core model: immutable Pipe, Fitting and Network records with eager validation
//		• Colebrook–White: iterative friction-factor solver with bounded convergence
//		• Head loss: Darcy–Weisbach friction losses + k-factor minor losses
//		• Curve sweep: lazy, restartable traversal of (flow, head) samples
//
// ✨ Why choose syscurve?
//
//   - Predictable numerics – every fixed-point loop is capped and every
//     divergence is an error, never a NaN
//   - Immutable model – networks are validated once, then safe to share
//     across goroutines without locks
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under three algorithm subpackages on top of the model:
//
//	core/      — Pipe, Fitting and Network value types & validation
//	colebrook/ — friction-factor solver (fixed-point Colebrook–White)
//	headloss/  — total head loss at one flow rate
//	curve/     — system-curve sweep from zero to a maximum flow
//
// Quick sketch:
//
//	Q ──▶ headloss ──▶ Σ f·(L/D)·v²/2g  +  Σ k·v²/2g ──▶ H(Q)
//	             ▲
//	        colebrook (f per pipe)
//
// All inputs share one consistent unit system; gravity defaults to
// 32.2 ft/s² and is configurable for metric networks.
//
//	go get github.com/katalvlaran/syscurve
package syscurve
