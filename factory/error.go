package factory

import "github.com/hhenriques/codefactory/pkg"

var (
	ErrMissingOperand   = pkg.NewError("missing required operand")
	ErrUnknownBackend   = pkg.NewError("unknown backend")
	ErrDuplicateBackend = pkg.NewError("backend already registered")
	ErrInvalidLiteral   = pkg.NewError("invalid literal")
)
