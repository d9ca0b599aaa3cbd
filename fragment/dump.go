package fragment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// ToMap returns n as nested maps and slices. Every node becomes a map with
// a single key naming its kind.
func ToMap(n Node) map[string]any {
	switch n := n.(type) {
	case nil, Nop:
		return map[string]any{"nop": true}
	case Text:
		return map[string]any{"text": string(n)}
	case Group:
		return map[string]any{"group": toMaps(n)}
	case Nest:
		return map[string]any{"nest": toMaps(n)}
	case Chain:
		return map[string]any{"chain": map[string]any{
			"sep":   n.Sep,
			"paren": n.Paren,
			"terms": toMaps(n.Terms),
		}}
	case Call:
		return map[string]any{"call": map[string]any{
			"callee": ToMap(n.Callee),
			"args":   toMaps(n.Args),
		}}
	case List:
		return map[string]any{"list": map[string]any{
			"open":  n.Open,
			"sep":   n.Sep,
			"close": n.Close,
			"items": toMaps(n.Items),
		}}
	case Line:
		return map[string]any{"line": map[string]any{
			"body":      ToMap(n.Body),
			"terminate": n.Terminate,
		}}
	default:
		return map[string]any{"unknown": fmt.Sprintf("%T", n)}
	}
}

func toMaps(ns []Node) []any {
	out := make([]any, len(ns))
	for i, n := range ns {
		out[i] = ToMap(n)
	}

	return out
}

// FormatYAML writes the node tree of f to w as YAML. With indent <= 0 the
// document is written in flow style.
func FormatYAML(ctx context.Context, w io.Writer, f Fragment, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	data, err := yaml.MarshalContext(ctx, ToMap(f.Node()), opts...)
	if err != nil {
		return err
	}

	_, err = w.Write(data)

	return err
}

// FormatJSON writes the node tree of f to w as JSON followed by a line
// break. With indent <= 0 the document is compact.
func FormatJSON(_ context.Context, w io.Writer, f Fragment, indent int) error {
	var (
		data []byte
		err  error
	)

	if indent > 0 {
		data, err = json.MarshalIndent(ToMap(f.Node()), "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(ToMap(f.Node()))
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}
