package controller

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/hhenriques/codefactory/factory"
)

// FieldType is the type of a model field as written in a manifest.
type FieldType string

const (
	FieldInt      FieldType = "int"
	FieldLong     FieldType = "long"
	FieldDecimal  FieldType = "decimal"
	FieldString   FieldType = "string"
	FieldBool     FieldType = "bool"
	FieldDateTime FieldType = "datetime"
)

var fieldExprTypes = map[FieldType]factory.ExprType{
	FieldInt:      factory.Integer,
	FieldLong:     factory.LongInteger,
	FieldDecimal:  factory.Decimal,
	FieldString:   factory.Text,
	FieldBool:     factory.Boolean,
	FieldDateTime: factory.DateTime,
}

// FieldTypes returns the field types a manifest may use.
func FieldTypes() []FieldType {
	return []FieldType{
		FieldInt, FieldLong, FieldDecimal, FieldString, FieldBool, FieldDateTime,
	}
}

func (t FieldType) Valid() bool {
	_, ok := fieldExprTypes[t]

	return ok
}

// ExprType returns the expression type of values of t.
func (t FieldType) ExprType() factory.ExprType {
	if et, ok := fieldExprTypes[t]; ok {
		return et
	}

	return factory.Unknown
}

// Record is one resolved record: a value per model field, in field order.
// Values are int, int64, [Decimal], string, bool or time.Time according to
// the field type.
type Record []any

// Decimal is the exact value of a decimal field, in the canonical form of
// [factory.ParseDecimal].
type Decimal string

// Float64 returns the nearest float64 to d. Values beyond the float64
// range are infinite.
func (d Decimal) Float64() float64 {
	v, _ := strconv.ParseFloat(string(d), 64)

	return v
}

// Resolve evaluates and converts the records of m.
func (m *Manifest) Resolve(ctx context.Context) ([]Record, error) {
	out := make([]Record, 0, len(m.Records))

	for i, raw := range m.Records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rec, err := m.resolve(i, raw)
		if err != nil {
			return nil, err
		}

		out = append(out, rec)
	}

	return out, nil
}

func (m *Manifest) resolve(index int, raw map[string]any) (Record, error) {
	for name := range raw {
		if !m.hasField(name) {
			return nil, ErrManifest.With(
				slog.String("reason", "record sets an undeclared field"),
				slog.Int("record", index),
				slog.String("field", name))
		}
	}

	env := map[string]any{"index": index}
	rec := make(Record, len(m.Model.Fields))

	for i, f := range m.Model.Fields {
		attrs := []slog.Attr{
			slog.Int("record", index),
			slog.String("field", f.Name),
			slog.String("type", string(f.Type)),
		}

		v, ok := raw[f.Name]
		if !ok || v == nil {
			return nil, ErrFieldValue.With(append(attrs,
				slog.String("reason", "missing"))...)
		}

		if s, isString := v.(string); isString && strings.HasPrefix(s, "=") {
			var err error

			if v, err = evaluate(s, env, attrs...); err != nil {
				return nil, err
			}
		}

		cv, err := convert(f.Type, v)
		if err != nil {
			return nil, ErrFieldValue.Wrap(err).With(append(attrs,
				slog.String("value", fmt.Sprint(v)))...)
		}

		rec[i] = cv
		env[f.Name] = cv

		if d, isDecimal := cv.(Decimal); isDecimal {
			env[f.Name] = d.Float64()
		}
	}

	return rec, nil
}

func (m *Manifest) hasField(name string) bool {
	for _, f := range m.Model.Fields {
		if f.Name == name {
			return true
		}
	}

	return false
}

// evaluate returns the value of a "=" prefixed record value.
func evaluate(s string, env map[string]any, attrs ...slog.Attr) (any, error) {
	if strings.HasPrefix(s, "==") {
		return s[1:], nil
	}

	source := strings.TrimSpace(s[1:])

	attrs = append(attrs, slog.String("source", source))

	program, err := expr.Compile(source, expr.Env(env))
	if err != nil {
		return nil, ErrEvaluate.Wrap(err).With(attrs...)
	}

	result, err := vm.Run(program, env)
	if err != nil {
		return nil, ErrEvaluate.Wrap(err).With(attrs...)
	}

	return result, nil
}

// convert returns v as the Go value of a field of type t.
func convert(t FieldType, v any) (any, error) {
	switch t {
	case FieldInt:
		n, err := toInt64(v)
		if err != nil {
			return nil, err
		}

		if n < math.MinInt32 || n > math.MaxInt32 {
			return nil, strconv.ErrRange
		}

		return int(n), nil

	case FieldLong:
		return toInt64(v)

	case FieldDecimal:
		return toDecimal(v)

	case FieldString:
		switch v := v.(type) {
		case string:
			return v, nil
		case bool, int, int64, uint64, float64:
			return fmt.Sprint(v), nil
		}

	case FieldBool:
		switch v := v.(type) {
		case bool:
			return v, nil
		case string:
			return strconv.ParseBool(v)
		}

	case FieldDateTime:
		switch v := v.(type) {
		case time.Time:
			return v, nil
		case string:
			return parseTime(v)
		}
	}

	return nil, fmt.Errorf("cannot use %T as %s", v, t)
}

func toInt64(v any) (int64, error) {
	switch v := v.(type) {
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case uint64:
		if v > math.MaxInt64 {
			return 0, strconv.ErrRange
		}

		return int64(v), nil
	case float64:
		if v != math.Trunc(v) || v < math.MinInt64 || v >= math.MaxInt64 {
			return 0, fmt.Errorf("%v is not an integer", v)
		}

		return int64(v), nil
	case string:
		return strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	default:
		return 0, fmt.Errorf("cannot use %T as an integer", v)
	}
}

// toDecimal converts v exactly. Text keeps every digit; YAML numbers
// written without quotes arrive as float64 and keep the shortest digits
// that read back as the same float64.
func toDecimal(v any) (Decimal, error) {
	var text string

	switch v := v.(type) {
	case int:
		text = strconv.Itoa(v)
	case int64:
		text = strconv.FormatInt(v, 10)
	case uint64:
		text = strconv.FormatUint(v, 10)
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return "", fmt.Errorf("%v is not a decimal", v)
		}

		text = strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		text = v
	default:
		return "", fmt.Errorf("cannot use %T as a decimal", v)
	}

	canonical, err := factory.ParseDecimal(text)
	if err != nil {
		return "", err
	}

	return Decimal(canonical), nil
}

// parseTime accepts RFC 3339 date-times and plain dates.
func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}

	return time.Parse(time.DateOnly, s)
}
