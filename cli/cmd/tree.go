package cmd

import (
	"context"
	"log/slog"

	"github.com/hhenriques/codefactory/controller"
	"github.com/hhenriques/codefactory/fragment"
)

// Tree prints the fragment tree of a generated class instead of its text.
type Tree struct {
	YAML TreeYAML `cmd:"" help:"Dump the tree as YAML." name:"yaml"`
	JSON TreeJSON `cmd:"" help:"Dump the tree as JSON." name:"json"`
}

// TreeOptions are the flags shared by the tree formats.
type TreeOptions struct {
	Part   string `default:"controller" enum:"controller,model" help:"Generated class to dump (${enum})."`
	Indent int    `default:"2"                                  help:"Indent width of the dump."            short:"i"`
}

// TreeYAML dumps the tree as YAML.
type TreeYAML struct {
	Options TreeOptions `embed:""`
	Source  Source      `embed:""`
}

// Run executes the tree yaml command.
func (t *TreeYAML) Run(ctx context.Context) error {
	stmt, _, err := t.Source.generate(ctx, controller.Part(t.Options.Part))
	if err != nil {
		return err
	}

	err = fragment.FormatYAML(ctx, outputFrom(ctx), stmt, t.Options.Indent)
	if err != nil {
		return ErrYAMLMarshal.Wrap(err).With(slog.String("part", t.Options.Part))
	}

	return nil
}

// TreeJSON dumps the tree as JSON.
type TreeJSON struct {
	Options TreeOptions `embed:""`
	Source  Source      `embed:""`
}

// Run executes the tree json command.
func (t *TreeJSON) Run(ctx context.Context) error {
	stmt, _, err := t.Source.generate(ctx, controller.Part(t.Options.Part))
	if err != nil {
		return err
	}

	err = fragment.FormatJSON(ctx, outputFrom(ctx), stmt, t.Options.Indent)
	if err != nil {
		return ErrJSONMarshal.Wrap(err).With(slog.String("part", t.Options.Part))
	}

	return nil
}
