// Package profile provides optional runtime profiling for codefactory.
//
// # Overview
//
// This package integrates [github.com/pkg/profile] with conditional
// compilation. Profiling must be enabled at build time using the "pprof"
// build tag:
//
//	go build -tags pprof .
//
// When built without the tag, [Modes] is empty and [Profiler.Start] returns
// a no-op [Stopper].
//
// # Available Profiling Modes
//
//   - allocs:    Memory allocation profiling (all allocations)
//   - block:     Block (synchronization) profiling
//   - clock:     Wall-clock profiling
//   - cpu:       CPU profiling
//   - goroutine: Goroutine profiling
//   - heap:      Heap memory profiling (live allocations)
//   - mem:       General memory profiling
//   - mutex:     Mutex contention profiling
//   - thread:    Thread creation profiling
//   - trace:     Execution trace profiling
//
// # Usage
//
//	p := profile.Profiler{Mode: "cpu", Path: "/tmp/profiles"}
//	defer p.Start().Stop()
//
// Profile files are written to Path with names matching the mode
// (e.g. cpu.pprof, mem.pprof). From the command line:
//
//	codefactory --pprof-mode cpu gen controller products.yaml
//	go tool pprof -http :8080 ~/.cache/codefactory/pprof/cpu.pprof
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
