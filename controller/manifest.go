package controller

import (
	"context"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"unicode"

	"github.com/goccy/go-yaml"
	"github.com/klauspost/readahead"
)

// Manifest describes one controller and the model it serves.
type Manifest struct {
	// Header, when set, is emitted as a block comment on top of every
	// generated file.
	Header     string   `yaml:"header,omitempty"`
	Namespace  string   `yaml:"namespace,omitempty"`
	Imports    []string `yaml:"imports,omitempty"`
	Controller string   `yaml:"controller"`
	Base       string   `yaml:"base,omitempty"`
	Model      Model    `yaml:"model"`
	Types      Types    `yaml:"types,omitempty"`

	Records []map[string]any `yaml:"records,omitempty"`
}

// Model describes the model class.
type Model struct {
	Name string `yaml:"name"`
	// Namespace of the model class. Empty means the manifest namespace.
	Namespace string   `yaml:"namespace,omitempty"`
	Imports   []string `yaml:"imports,omitempty"`
	// Key names the field the controller looks records up by.
	Key    string  `yaml:"key"`
	Fields []Field `yaml:"fields"`
}

type Field struct {
	Name string    `yaml:"name"`
	Type FieldType `yaml:"type"`
}

// Types names the framework types and methods the controller uses.
type Types struct {
	// Collection is the generic type returned by the list action.
	Collection string `yaml:"collection,omitempty"`
	// Result is the type returned by the lookup action.
	Result string `yaml:"result,omitempty"`
	// Find is the method selecting the first record matching a predicate.
	Find     string `yaml:"find,omitempty"`
	NotFound string `yaml:"not_found,omitempty"`
	OK       string `yaml:"ok,omitempty"`
}

// DefaultTypes are the ASP.NET Web API names.
var DefaultTypes = Types{
	Collection: "IEnumerable",
	Result:     "IHttpActionResult",
	Find:       "FirstOrDefault",
	NotFound:   "NotFound",
	OK:         "Ok",
}

// Load reads and validates the manifest at path. A path of "-" reads
// standard input.
func Load(ctx context.Context, path string) (*Manifest, error) {
	if path == "-" {
		return Decode(ctx, os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, ErrReadManifest.Wrap(err).With(slog.String("path", path))
	}
	defer f.Close()

	m, err := Decode(ctx, f)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// Decode reads a YAML manifest from r, fills in defaults and validates it.
func Decode(ctx context.Context, r io.Reader) (*Manifest, error) {
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, ErrReadManifest.Wrap(err)
	}

	var m Manifest

	err = yaml.UnmarshalContext(ctx, data, &m, yaml.DisallowUnknownField())
	if err != nil {
		return nil, ErrDecodeManifest.Wrap(err)
	}

	m.applyDefaults()

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return &m, nil
}

func (m *Manifest) applyDefaults() {
	set := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}

	set(&m.Model.Namespace, m.Namespace)
	set(&m.Types.Collection, DefaultTypes.Collection)
	set(&m.Types.Result, DefaultTypes.Result)
	set(&m.Types.Find, DefaultTypes.Find)
	set(&m.Types.NotFound, DefaultTypes.NotFound)
	set(&m.Types.OK, DefaultTypes.OK)
}

// Validate reports the first structural problem of m. Record values are
// checked by [Manifest.Resolve].
func (m *Manifest) Validate() error {
	if m.Controller == "" {
		return ErrManifest.With(slog.String("reason", "controller name is empty"))
	}

	if m.Model.Name == "" {
		return ErrManifest.With(slog.String("reason", "model name is empty"))
	}

	names := []struct {
		key, value string
		dotted     bool
	}{
		{"controller", m.Controller, false},
		{"model", m.Model.Name, false},
		{"base", m.Base, true},
		{"namespace", m.Namespace, true},
		{"model.namespace", m.Model.Namespace, true},
	}

	for _, n := range names {
		if n.value == "" {
			continue
		}

		valid := isIdent
		if n.dotted {
			valid = isDotted
		}

		if !valid(n.value) {
			return ErrManifest.With(
				slog.String("reason", "not a valid name"),
				slog.String("key", n.key),
				slog.String("name", n.value))
		}
	}

	for _, imports := range [][]string{m.Imports, m.Model.Imports} {
		for _, imp := range imports {
			if !isDotted(strings.TrimSuffix(imp, ".*")) {
				return ErrManifest.With(
					slog.String("reason", "not a valid import"),
					slog.String("import", imp))
			}
		}
	}

	if len(m.Model.Fields) == 0 {
		return ErrManifest.With(
			slog.String("reason", "model has no fields"),
			slog.String("model", m.Model.Name))
	}

	seen := make(map[string]bool, len(m.Model.Fields))

	for i, f := range m.Model.Fields {
		switch {
		case f.Name == "":
			return ErrManifest.With(
				slog.String("reason", "field name is empty"),
				slog.Int("field", i))
		case !isIdent(f.Name):
			return ErrManifest.With(
				slog.String("reason", "not a valid name"),
				slog.String("key", "field"),
				slog.String("name", f.Name))
		case seen[f.Name]:
			return ErrManifest.With(
				slog.String("reason", "duplicate field"),
				slog.String("field", f.Name))
		case !f.Type.Valid():
			return ErrManifest.With(
				slog.String("reason", "unknown field type"),
				slog.String("field", f.Name),
				slog.String("type", string(f.Type)),
				slog.Any("types", FieldTypes()))
		}

		seen[f.Name] = true
	}

	if !seen[m.Model.Key] {
		return ErrManifest.With(
			slog.String("reason", "key is not a field"),
			slog.String("key", m.Model.Key))
	}

	return nil
}

// isIdent reports whether s is a letter or '_' followed by letters, digits
// and '_'.
func isIdent(s string) bool {
	for i, r := range s {
		switch {
		case r == '_', unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}

	return s != ""
}

// isDotted reports whether s is one or more identifiers joined by '.'.
func isDotted(s string) bool {
	for part := range strings.SplitSeq(s, ".") {
		if !isIdent(part) {
			return false
		}
	}

	return true
}

// KeyField returns the field named by the model key.
func (m *Manifest) KeyField() Field {
	i := slices.IndexFunc(m.Model.Fields, func(f Field) bool {
		return f.Name == m.Model.Key
	})
	if i < 0 {
		return Field{}
	}

	return m.Model.Fields[i]
}
