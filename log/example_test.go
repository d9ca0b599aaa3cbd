package log_test

import (
	"log/slog"
	"os"

	"github.com/hhenriques/codefactory/log"
)

func ExampleMake() {
	logger := log.Make(os.Stdout,
		log.WithPretty(false),
		log.WithTimeLayout("none"))

	logger.Info("generated", slog.String("class", "ProductsController"))
	logger.Debug("not shown")
	// Output:
	// level=INFO msg=generated class=ProductsController
}

func ExampleLogger_Wrap() {
	logger := log.Make(os.Stdout,
		log.WithPretty(false),
		log.WithTimeLayout("none"))

	debug := logger.Wrap(log.WithLevel(log.LevelDebug))
	debug.Debug("rendering", slog.Int("indent", 4))
	// Output:
	// level=DEBUG msg=rendering indent=4
}
