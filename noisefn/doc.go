// Package noisefn defines the evaluable capability shared by procedural noise
// pipelines, and a single-slot cache that sits in front of any of them.
//
// A NoiseFn maps a fixed-size coordinate tuple to one float64. The tuple is a
// Go array, so its dimension is part of the type: a Cache over [3]float64 can
// only wrap a source over [3]float64, and a mismatch never gets past the
// compiler.
//
// Cache remembers the most recent (point, value) pair only. It pays off when
// one node feeds several consumers that query it with the same point in quick
// succession:
//
//	base := noisefn.NewCache[[2]float64](expensive)
//	a := scale(base)
//	b := turbulence(base)
//	// a.Get(p) and b.Get(p) evaluate expensive once.
//
// Points are compared with ==. There is no tolerance, NaN never matches, and
// -0 matches +0.
//
// WARNING: Cache is not safe for concurrent use. Give each goroutine its own
// pipeline, or guard the shared one with a lock.
package noisefn
