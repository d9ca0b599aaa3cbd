package controller

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/hhenriques/codefactory/factory"
	"github.com/hhenriques/codefactory/fragment"
	"github.com/hhenriques/codefactory/log"
)

// Part selects one generated file.
type Part string

const (
	PartController Part = "controller"
	PartModel      Part = "model"
)

func Parts() []Part { return []Part{PartController, PartModel} }

// Generator emits the classes described by a manifest through a factory.
type Generator struct {
	f      *factory.Factory
	m      *Manifest
	logger log.Logger
}

// Option configures a [Generator].
type Option func(*Generator)

func WithLogger(l log.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// NewGenerator returns a generator for the validated manifest m.
func NewGenerator(f *factory.Factory, m *Manifest, opts ...Option) *Generator {
	g := &Generator{f: f, m: m, logger: log.Default()}

	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g
}

// Generate returns the compilation unit of part. The manifest is validated
// first, so one built in code fails the same way a decoded one does.
func (g *Generator) Generate(ctx context.Context, part Part) (fragment.Statement, error) {
	if err := g.m.Validate(); err != nil {
		return fragment.Statement{}, err
	}

	switch part {
	case PartController:
		return g.Controller(ctx)
	case PartModel:
		return g.Model(ctx), nil
	default:
		return fragment.Statement{}, ErrUnknownPart.With(
			slog.String("part", string(part)),
			slog.Any("parts", Parts()))
	}
}

// FileName returns the conventional output file name of part.
func (g *Generator) FileName(part Part) string {
	name := g.m.Controller
	if part == PartModel {
		name = g.m.Model.Name
	}

	return name + g.f.Backend().FileExtension()
}

// Controller returns the controller class serving the manifest records:
// a private method building them, a public action listing them and one
// looking a record up by key.
func (g *Generator) Controller(ctx context.Context) (fragment.Statement, error) {
	records, err := g.m.Resolve(ctx)
	if err != nil {
		return fragment.Statement{}, err
	}

	f := g.f
	fetch := "Fetch" + plural(g.m.Model.Name)

	class := f.DeclareClass(g.m.Controller, f.Ident(g.m.Base),
		g.fetchMethod(fetch, records),
		g.listMethod(fetch),
		g.lookupMethod(fetch),
	)

	g.logger.DebugContext(ctx, "generated controller",
		slog.String("backend", f.Backend().Name()),
		slog.String("class", g.m.Controller),
		slog.Int("records", len(records)))

	return g.unit(g.m.Namespace, g.m.Imports, class), nil
}

// Model returns the model class: a property per field and a constructor
// setting all of them in field order.
func (g *Generator) Model(ctx context.Context) fragment.Statement {
	f := g.f
	fields := g.m.Model.Fields

	body := make([]fragment.Statement, 0, len(fields)+1)
	args := make([]factory.TypedArgument, len(fields))
	assigns := make([]fragment.Statement, len(fields))

	for i, fld := range fields {
		et := fld.Type.ExprType()
		typ := f.TypeName(et)
		param := lowerFirst(fld.Name)

		body = append(body, f.DeclareAutoProperty(typ, fld.Name))
		args[i] = factory.Arg(typ, param)
		assigns[i] = f.SetProperty(f.This(), fld.Name, f.Ident(param), et)
	}

	body = append(body, f.DeclareConstructor(g.m.Model.Name, args, assigns...))
	class := f.DeclareClass(g.m.Model.Name, fragment.Expression{}, body...)

	g.logger.DebugContext(ctx, "generated model",
		slog.String("backend", f.Backend().Name()),
		slog.String("class", g.m.Model.Name),
		slog.Int("fields", len(fields)))

	return g.unit(g.m.Model.Namespace, g.m.Model.Imports, class)
}

// unit returns a compilation unit: the header comment, the imports and the
// class, inside namespace when it is set, separated by empty lines.
func (g *Generator) unit(namespace string, imports []string, class fragment.Statement) fragment.Statement {
	f := g.f

	paths := make([]fragment.Expression, len(imports))
	for i, p := range imports {
		paths[i] = dotted(p)
	}

	if namespace != "" {
		class = f.DeclareNamespace(dotted(namespace), class)
	}

	parts := fragment.Filter([]fragment.Statement{g.header(), f.Imports(paths...), class})

	out := make([]fragment.Statement, 0, 2*len(parts))
	for i, p := range parts {
		if i > 0 {
			out = append(out, fragment.Blank())
		}

		out = append(out, p)
	}

	return f.Seq(out...)
}

func (g *Generator) header() fragment.Statement {
	text := strings.TrimSpace(g.m.Header)
	if text == "" {
		return fragment.Statement{}
	}

	var sb strings.Builder

	sb.WriteString("\n")

	for line := range strings.SplitSeq(text, "\n") {
		sb.WriteString(strings.TrimRight(" * "+line, " "))
		sb.WriteString("\n")
	}

	sb.WriteString(" ")

	return g.f.BlockComment(sb.String())
}

func (g *Generator) fetchMethod(name string, records []Record) fragment.Statement {
	f := g.f
	model := g.m.Model.Name

	items := make([]fragment.Expression, len(records))
	for i, rec := range records {
		args := make([]fragment.Expression, len(rec))
		for j, v := range rec {
			args[j] = g.literal(v)
		}

		items[i] = f.New(model, args...)
	}

	return f.DeclareMethod(factory.Private, model+"[]", name, nil,
		f.ReturnValue(f.NewArray(model, items...)))
}

func (g *Generator) listMethod(fetch string) fragment.Statement {
	f := g.f
	model := g.m.Model.Name

	return f.DeclareMethod(factory.Public,
		g.m.Types.Collection+"<"+model+">", "GetAll"+plural(model), nil,
		f.ReturnValue(f.Call(fetch)))
}

func (g *Generator) lookupMethod(fetch string) fragment.Statement {
	f := g.f
	model := g.m.Model.Name
	key := g.m.KeyField()
	et := key.Type.ExprType()

	param := lowerFirst(key.Name)
	local := distinct(lowerFirst(model), param)
	each := distinct(string([]rune(local)[:1]), param, local)

	match := f.Lambda([]string{each},
		f.Eq(f.GetProperty(f.Ident(each), key.Name, et), f.Ident(param), et))

	return f.DeclareMethod(factory.Public, g.m.Types.Result, "Get"+model,
		[]factory.TypedArgument{factory.Arg(f.TypeName(et), param)},
		f.DeclareVarInferred(local, f.CallMethod(f.Call(fetch), g.m.Types.Find, match)),
		f.If(f.IsNull(f.Ident(local)), f.ReturnValue(f.Call(g.m.Types.NotFound))),
		f.ReturnValue(f.Call(g.m.Types.OK, f.Ident(local))),
	)
}

// literal returns the literal of a resolved record value.
func (g *Generator) literal(v any) fragment.Expression {
	f := g.f

	switch v := v.(type) {
	case int:
		return f.Int(v)
	case int64:
		return f.Long(v)
	case Decimal:
		return f.DecimalText(string(v))
	case string:
		return f.String(v)
	case bool:
		return f.Bool(v)
	case time.Time:
		return f.DateTimeOf(v)
	default:
		return f.Null()
	}
}

// distinct returns name, with '_' appended until it differs from every
// name in taken.
func distinct(name string, taken ...string) string {
	for slices.Contains(taken, name) {
		name += "_"
	}

	return name
}

func dotted(name string) fragment.Expression {
	return fragment.Ident(strings.Split(name, ".")...)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}

	r, n := utf8.DecodeRuneInString(s)

	return string(unicode.ToLower(r)) + s[n:]
}

// plural returns the English plural of a class name.
func plural(s string) string {
	lower := strings.ToLower(s)

	switch {
	case strings.HasSuffix(lower, "y") && len(s) > 1 && !strings.ContainsRune("aeiou", rune(lower[len(lower)-2])):
		return s[:len(s)-1] + "ies"
	case strings.HasSuffix(lower, "s"), strings.HasSuffix(lower, "x"),
		strings.HasSuffix(lower, "ch"), strings.HasSuffix(lower, "sh"):
		return s + "es"
	default:
		return s + "s"
	}
}
