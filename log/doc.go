// Package log is a small layer over [log/slog] used by every codefactory
// command and by the code generators.
//
// A [Logger] is built once from functional options and is then immutable:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatJSON),
//		log.WithTimeLayout("RFC3339Nano"))
//
// [Logger.Wrap] rebuilds a logger with some options changed and
// [Logger.With] adds attributes to every record. Logging methods take
// [slog.Attr] values only.
//
// The package also keeps a default logger writing to standard error.
// [Config] reconfigures it and the package-level functions ([Debug], [Info],
// [Warn], [Error] and their Context variants) write through it.
//
// With [WithPretty] enabled (the default) records are colorized with
// lipgloss when the output is a terminal; JSON records are then laid out
// over several lines, which is easier to read but is no longer valid JSON.
package log
