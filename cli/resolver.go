package cli

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
	"github.com/klauspost/readahead"

	"github.com/hhenriques/codefactory/pkg"
)

// ErrDecodeConfig is returned when a configuration file is not valid YAML.
var ErrDecodeConfig = pkg.NewError("decode configuration file")

// resolve returns a [kong.ConfigurationLoader] that reads YAML
// configuration files, such as the one written by the init command.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve(ctx), "/path/to/config.yaml")
//
// Keys are flag names. Nested mappings are joined with hyphens, so the
// following two documents both set --log-level:
//
//	log-level: debug
//
//	log:
//	  level: debug
//
// Underscores may be used in place of hyphens. Command-line flags override
// configuration values.
func resolve(ctx context.Context) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		ra := readahead.NewReader(r)
		defer ra.Close()

		data, err := io.ReadAll(ra)
		if err != nil {
			return nil, ErrDecodeConfig.Wrap(err)
		}

		var doc map[string]any
		if err := yaml.UnmarshalContext(ctx, data, &doc); err != nil {
			return nil, ErrDecodeConfig.Wrap(err)
		}

		cfg := make(config)
		cfg.flatten("", doc)

		return cfg, nil
	}
}

// config implements [kong.Resolver] over a flattened YAML document.
type config map[string]any

// Validate implements [kong.Resolver].
func (config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver].
func (c config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := c[flag.Name]; ok {
		return value, nil
	}

	if value, ok := c[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return value, nil
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}

func (c config) flatten(prefix string, doc map[string]any) {
	for key, val := range doc {
		if prefix != "" {
			key = prefix + "-" + key
		}

		switch v := val.(type) {
		case map[string]any:
			c.flatten(key, v)

		// Kong requires numbers as strings for parsing
		case int64:
			c[key] = strconv.FormatInt(v, 10)
		case uint64:
			c[key] = strconv.FormatUint(v, 10)
		case float64:
			c[key] = strconv.FormatFloat(v, 'f', -1, 64)

		default:
			c[key] = v
		}
	}
}
