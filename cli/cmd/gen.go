package cmd

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hhenriques/codefactory/controller"
	"github.com/hhenriques/codefactory/fragment"
	"github.com/hhenriques/codefactory/log"
)

// defaultFileMode is the permission mode of written files.
const defaultFileMode os.FileMode = 0o644

// Gen renders a class described by a manifest.
type Gen struct {
	Controller GenController `cmd:"" help:"Generate the controller class."`
	Model      GenModel      `cmd:"" help:"Generate the model class."`
}

// GenController generates the controller class.
type GenController struct {
	Output Output `embed:""`
	Source Source `embed:""`
}

func (g *GenController) Run(ctx context.Context) error {
	return g.Output.run(ctx, &g.Source, controller.PartController)
}

// GenModel generates the model class.
type GenModel struct {
	Output Output `embed:""`
	Source Source `embed:""`
}

func (g *GenModel) Run(ctx context.Context) error {
	return g.Output.run(ctx, &g.Source, controller.PartModel)
}

// Output holds the rendering and destination flags of gen.
type Output struct {
	Indent int    `default:"4" help:"Spaces per indentation level."                short:"i"`
	Tabs   bool   `            help:"Indent with tabs instead of spaces."`
	Out    string `default:"-" help:"Output file or directory, or '-' for stdout." short:"o" placeholder:"PATH"`
}

func (o *Output) options() []fragment.Option {
	if o.Tabs {
		return []fragment.Option{fragment.WithTabs()}
	}

	return []fragment.Option{fragment.WithIndent(o.Indent)}
}

// run renders part into memory and writes it out only when rendering
// succeeded, so that a failure never leaves a truncated file behind.
func (o *Output) run(ctx context.Context, src *Source, part controller.Part) error {
	stmt, g, err := src.generate(ctx, part)
	if err != nil {
		return err
	}

	var buf bytes.Buffer

	if err := fragment.Render(&buf, stmt, o.options()...); err != nil {
		return ErrRender.Wrap(err).With(slog.String("part", string(part)))
	}

	return writeOutput(ctx, o.Out, g.FileName(part), buf.Bytes())
}

// writeOutput writes data to path. A path of "-" is standard output, and an
// existing directory receives a file called name.
func writeOutput(ctx context.Context, path, name string, data []byte) error {
	if path == "" || path == stdioPath {
		if _, err := outputFrom(ctx).Write(data); err != nil {
			return ErrWriteOutput.Wrap(err).With(slog.String("path", stdioPath))
		}

		return nil
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, name)
	}

	if err := os.WriteFile(path, data, defaultFileMode); err != nil {
		return ErrWriteOutput.Wrap(err).With(slog.String("path", path))
	}

	log.DebugContext(ctx, "wrote output",
		slog.String("path", path),
		slog.Int("bytes", len(data)))

	return nil
}
