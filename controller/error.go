package controller

import "github.com/hhenriques/codefactory/pkg"

var (
	ErrReadManifest   = pkg.NewError("failed to read manifest")
	ErrDecodeManifest = pkg.NewError("failed to decode manifest")
	ErrManifest       = pkg.NewError("invalid manifest")
	ErrFieldValue     = pkg.NewError("invalid field value")
	ErrEvaluate       = pkg.NewError("field expression failed")
	ErrUnknownPart    = pkg.NewError("unknown output part")
)
