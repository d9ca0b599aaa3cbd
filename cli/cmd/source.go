package cmd

import (
	"context"
	"log/slog"

	"github.com/hhenriques/codefactory/controller"
	"github.com/hhenriques/codefactory/factory"
	"github.com/hhenriques/codefactory/fragment"
	"github.com/hhenriques/codefactory/log"
)

// Source selects the manifest and the backend to generate with.
type Source struct {
	Backend  string `default:"${backend}" help:"Target language (${backends})." short:"b"`
	Manifest string `arg:"" default:"-" help:"Manifest file or '-' for stdin." name:"manifest"`
}

// generate returns the unit of part described by the manifest.
func (s *Source) generate(
	ctx context.Context,
	part controller.Part,
) (fragment.Statement, *controller.Generator, error) {
	backend, err := registry().Lookup(s.Backend)
	if err != nil {
		return fragment.Statement{}, nil, err
	}

	m, err := controller.Load(ctx, s.Manifest)
	if err != nil {
		return fragment.Statement{}, nil, err
	}

	logger := log.Default().With(
		slog.String("manifest", s.Manifest),
		slog.String("part", string(part)),
	)

	g := controller.NewGenerator(
		factory.New(backend, factory.WithLogger(logger)),
		m,
		controller.WithLogger(logger),
	)

	stmt, err := g.Generate(ctx, part)
	if err != nil {
		return fragment.Statement{}, nil, err
	}

	return stmt, g, nil
}
