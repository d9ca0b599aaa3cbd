package cmd

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"text/tabwriter"

	"github.com/alecthomas/kong"

	"github.com/hhenriques/codefactory/csharp"
	"github.com/hhenriques/codefactory/factory"
	"github.com/hhenriques/codefactory/java"
)

// DefaultBackend is the backend used when none is configured.
const DefaultBackend = "csharp"

// registry holds every backend the CLI can emit.
var registry = sync.OnceValue(
	func() *factory.Registry {
		r := factory.NewRegistry()

		for _, err := range []error{
			r.Register(csharp.New, "cs", "c#"),
			r.Register(java.New),
		} {
			if err != nil {
				panic(err)
			}
		}

		return r
	},
)

// Vars returns the kong variables the command flags refer to.
func Vars() kong.Vars {
	return kong.Vars{
		"backend":  DefaultBackend,
		"backends": strings.Join(registry().Names(), ", "),
	}
}

// Backends lists the registered backends.
type Backends struct{}

// Run executes the backends command.
func (b *Backends) Run(ctx context.Context) error {
	tw := tabwriter.NewWriter(outputFrom(ctx), 0, 4, 2, ' ', 0)

	for _, name := range registry().Names() {
		backend, err := registry().Lookup(name)
		if err != nil {
			return err
		}

		fmt.Fprintf(tw, "%s\t%s\n", name, backend.FileExtension())
	}

	return tw.Flush()
}
