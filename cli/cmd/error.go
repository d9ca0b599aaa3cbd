package cmd

import "github.com/hhenriques/codefactory/pkg"

var (
	ErrJSONMarshal   = pkg.NewError("marshal JSON")
	ErrYAMLMarshal   = pkg.NewError("marshal YAML")
	ErrRender        = pkg.NewError("render output")
	ErrWriteOutput   = pkg.NewError("write output file")
	ErrWriteConfig   = pkg.NewError("write configuration file")
	ErrWriteSample   = pkg.NewError("write sample manifest")
	ErrFileExists    = pkg.NewError("file exists (use --force to overwrite)")
	ErrNoKongContext = pkg.NewError("command context not initialized")
)
