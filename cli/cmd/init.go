package cmd

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/hhenriques/codefactory/controller"
	"github.com/hhenriques/codefactory/log"
	"github.com/hhenriques/codefactory/profile"
)

// defaultConfigIndent is the number of spaces to use for indentation
// when generating the default configuration file.
const defaultConfigIndent = 2

// Init writes a configuration file holding the current flag values, and a
// sample manifest.
type Init struct {
	Force    bool   `help:"Overwrite existing files."             short:"f"`
	NoSample bool   `help:"Do not write the sample manifest."`
	Manifest string `default:"manifest.yaml" help:"Sample manifest path." type:"path"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) error {
	ktx := kongContextFrom(ctx)
	if ktx == nil {
		return ErrNoKongContext
	}

	confPath, ok := ktx.Model.Vars()[ConfigIdentifier]
	if !ok {
		panic("internal error: config path undefined")
	}

	data, err := yaml.MarshalContext(ctx, settings(ktx), yaml.Indent(defaultConfigIndent))
	if err != nil {
		return ErrYAMLMarshal.Wrap(err)
	}

	if err := i.create(confPath, data); err != nil {
		return ErrWriteConfig.With(slog.String("file", confPath)).Wrap(err)
	}

	log.DebugContext(ctx, "initialized configuration file",
		slog.String("path", confPath))

	if i.NoSample {
		return nil
	}

	if err := i.create(i.Manifest, controller.Sample); err != nil {
		return ErrWriteSample.With(slog.String("file", i.Manifest)).Wrap(err)
	}

	log.DebugContext(ctx, "wrote sample manifest",
		slog.String("path", i.Manifest))

	return nil
}

// create writes data to a new file at path, or truncates an existing one
// when i.Force is set.
func (i *Init) create(path string, data []byte) error {
	flag := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !i.Force {
		flag |= os.O_EXCL
	}

	file, err := os.OpenFile(path, flag, defaultFileMode)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return ErrFileExists.With(slog.Bool("exists", true))
		}

		return err
	}

	_, err = file.Write(data)
	if cerr := file.Close(); err == nil {
		err = cerr
	}

	return err
}

// settings collects the configurable flags of every command with their
// values: parsed values for global flags, defaults for the others.
// The flags of init itself are left out.
func settings(ktx *kong.Context) map[string]any {
	out := make(map[string]any)
	ignore := []string{"help", profile.Tag}

	var walk func(n *kong.Node)

	walk = func(n *kong.Node) {
		if n.Type == kong.CommandNode && n.Name == "init" {
			return
		}

		for _, flag := range n.Flags {
			if flag.Hidden || slices.ContainsFunc(ignore, func(s string) bool {
				return strings.HasPrefix(flag.Name, s)
			}) {
				continue
			}

			if _, dup := out[flag.Name]; dup {
				continue
			}

			if v := flagValue(ktx, flag, n == ktx.Model.Node); v != nil {
				out[flag.Name] = v
			}
		}

		for _, c := range n.Children {
			walk(c)
		}
	}

	walk(ktx.Model.Node)

	return out
}

// flagValue returns the value of flag to store in the configuration file,
// or nil if it has none.
func flagValue(ktx *kong.Context, flag *kong.Flag, parsed bool) any {
	if parsed {
		switch v := ktx.FlagValue(flag).(type) {
		case nil:
			return nil
		case string:
			if v == "" {
				return nil
			}

			return v
		default:
			return v
		}
	}

	if !flag.HasDefault || flag.Default == "" {
		return nil
	}

	switch flag.Target.Kind() {
	case reflect.Bool:
		if b, err := strconv.ParseBool(flag.Default); err == nil {
			return b
		}
	case reflect.Int, reflect.Int64:
		if n, err := strconv.Atoi(flag.Default); err == nil {
			return n
		}
	}

	return flag.Default
}
