package fragment

import "github.com/hhenriques/codefactory/pkg"

var (
	ErrEmptyOperands = pkg.NewError("no operands to chain")
	ErrUnknownNode   = pkg.NewError("unknown fragment node")
)
