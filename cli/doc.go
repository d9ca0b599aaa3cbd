// Package cli contains the command line interface for codefactory.
//
// # Usage
//
// Each subcommand reads a YAML manifest describing a controller and its
// model, then writes the generated source for the selected backend:
//
//	codefactory gen controller --backend java -o src/ products.yaml
//	codefactory gen model products.yaml > Product.cs
//	codefactory tree yaml --part model products.yaml
//	codefactory backends
//	codefactory init
//
// # Configuration
//
// Flag defaults are read from a YAML file in the user configuration
// directory (e.g. ~/.config/codefactory/config.yaml). The init command writes
// one holding the current values of every flag. Keys are flag names; nested
// mappings are joined with hyphens:
//
//	backend: java
//	indent: 2
//	log:
//	  level: debug
//
// Command-line flags override configuration values.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, none, ...)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize log output on terminals
//
// Log records are written to standard error so they never mix with
// generated code on standard output.
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o codefactory .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/codefactory/pprof)
package cli
