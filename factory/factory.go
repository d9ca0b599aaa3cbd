package factory

import (
	"log/slog"
	"time"

	"github.com/hhenriques/codefactory/fragment"
	"github.com/hhenriques/codefactory/log"
)

// DefaultExceptionVar names the exception caught by the catch-all helpers.
const DefaultExceptionVar = "ex"

const (
	setterArg          = "value"
	backingFieldPrefix = "_"
)

// Factory builds code fragments for one backend.
//
// Optional pieces may be no-op fragments; they are left out of the output.
// Required operands that are no-ops are programming errors and make the
// builder panic with [ErrMissingOperand].
type Factory struct {
	backend Backend
	logger  log.Logger
}

// Option configures a [Factory].
type Option func(*Factory)

// WithLogger sets the logger used to report suspicious but valid requests.
func WithLogger(l log.Logger) Option {
	return func(f *Factory) { f.logger = l }
}

// New returns a factory emitting code through b.
func New(b Backend, opts ...Option) *Factory {
	if b == nil {
		panic(ErrMissingOperand.With(slog.String("operand", "backend")))
	}

	f := &Factory{backend: b, logger: log.Default()}

	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}

	return f
}

// Backend returns the backend of f.
func (f *Factory) Backend() Backend { return f.backend }

// require panics when the operand called name is a no-op.
func require(name string, e fragment.Fragment) {
	if e.IsNop() {
		panic(ErrMissingOperand.With(slog.String("operand", name)))
	}
}

func (f *Factory) Bool(v bool) Expression {
	if v {
		return f.True()
	}

	return f.False()
}

func (f *Factory) True() Expression  { return fragment.Raw("true") }
func (f *Factory) False() Expression { return fragment.Raw("false") }
func (f *Factory) Null() Expression  { return fragment.Raw("null") }
func (f *Factory) This() Expression  { return fragment.Raw("this") }

// String returns the quoted, escaped literal of s.
func (f *Factory) String(s string) Expression { return fragment.Quote(s) }

// StringOrNull returns null for a nil s and the literal of *s otherwise.
func (f *Factory) StringOrNull(s *string) Expression {
	if s == nil {
		return f.Null()
	}

	return f.String(*s)
}

func (f *Factory) Int(v int) Expression    { return fragment.Int(v) }
func (f *Factory) Long(v int64) Expression { return f.backend.Long(v) }
func (f *Factory) BinaryData() Expression  { return f.backend.BinaryData() }

func (f *Factory) Date(year, month, day int) Expression {
	return f.backend.Date(year, month, day)
}

func (f *Factory) DateTime(year, month, day, hour, minute, second int) Expression {
	return f.backend.DateTime(year, month, day, hour, minute, second)
}

// Time returns a time of day: a date-time on 1900-01-01.
func (f *Factory) Time(hour, minute, second int) Expression {
	return f.DateTime(1900, 1, 1, hour, minute, second)
}

// DateTimeOf returns the date-time literal of t, to the second.
func (f *Factory) DateTimeOf(t time.Time) Expression {
	return f.DateTime(t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second())
}

// IsDefaultDateTime reports whether the arguments are 1900-01-01 00:00:00,
// the value that marks an unset time.
func IsDefaultDateTime(year, month, day, hour, minute, second int) bool {
	return year == 1900 && month == 1 && day == 1 &&
		hour == 0 && minute == 0 && second == 0
}

// Ident returns a dotted identifier; see [fragment.Ident].
func (f *Factory) Ident(parts ...string) Expression {
	return fragment.Ident(parts...)
}

// IdentOf returns a dotted identifier of expressions.
func (f *Factory) IdentOf(parts ...Expression) Expression {
	return fragment.IdentOf(parts...)
}

// ExceptionVar returns the identifier of the exception caught by the
// catch-all helpers.
func (f *Factory) ExceptionVar() Expression {
	return fragment.Raw(DefaultExceptionVar)
}

// NewObject returns a new instance of the root object type.
func (f *Factory) NewObject() Expression {
	return f.New(f.backend.ObjectType())
}
