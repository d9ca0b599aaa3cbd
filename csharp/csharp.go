// Package csharp emits C#.
package csharp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hhenriques/codefactory/factory"
	"github.com/hhenriques/codefactory/fragment"
)

type (
	Expression = fragment.Expression
	Statement  = fragment.Statement
)

// Backend is the C# backend. The zero value is ready to use.
type Backend struct{}

var (
	_ factory.Backend   = Backend{}
	_ factory.TypeNamer = Backend{}
)

// New returns the C# backend.
func New() factory.Backend { return Backend{} }

func (Backend) Name() string          { return "csharp" }
func (Backend) FileExtension() string { return ".cs" }

func (Backend) Long(v int64) Expression {
	return fragment.Raw(strconv.FormatInt(v, 10) + "L")
}

func (Backend) Decimal(text string) Expression {
	return fragment.Raw(text + "M")
}

func (Backend) DateTime(year, month, day, hour, minute, second int) Expression {
	return fragment.Raw(fmt.Sprintf("new DateTime(%d, %d, %d, %d, %d, %d)",
		year, month, day, hour, minute, second))
}

func (Backend) Date(year, month, day int) Expression {
	return fragment.Raw(fmt.Sprintf("new DateTime(%d, %d, %d)", year, month, day))
}

func (Backend) BinaryData() Expression { return fragment.Raw("new byte[] {}") }
func (Backend) ObjectType() string     { return "object" }

var typeNames = map[factory.ExprType]string{
	factory.Boolean:     "bool",
	factory.Decimal:     "decimal",
	factory.Integer:     "int",
	factory.LongInteger: "long",
	factory.Text:        "string",
	factory.Date:        "DateTime",
	factory.Time:        "DateTime",
	factory.DateTime:    "DateTime",
	factory.Object:      "object",
	factory.BinaryData:  "byte[]",
}

func (Backend) TypeName(t factory.ExprType) string { return typeNames[t] }

func (Backend) TrueCondition() Expression { return fragment.Raw("true") }

func (Backend) CatchAllClause(varName string) Expression {
	return fragment.Raw("Exception " + varName)
}

func (Backend) Coalesce(left, right Expression) Expression {
	return fragment.ChainOf(" ?? ", true, left, right)
}

// Operator orders strings with string.Compare; everything else uses the
// built-in operators.
func (Backend) Operator(op string, left, right Expression, t factory.ExprType) (Expression, bool) {
	if t != factory.Text || op == "+" || op == "-" || op == "*" || op == "/" {
		return Expression{}, false
	}

	compare := fragment.CallOf(fragment.Ident("string", "Compare"), left, right)

	return fragment.ChainOf(" "+op+" ", true, compare, fragment.Raw("0")), true
}

func (Backend) StructuralEquality(t factory.ExprType) (Expression, bool) {
	switch t {
	case factory.Object:
		return fragment.Ident("Object", "Equals"), true
	case factory.BinaryData:
		return fragment.Ident("BuiltInFunction", "AreBinaryNulls"), true
	default:
		return Expression{}, false
	}
}

func (Backend) TypeOf(class Expression) Expression {
	return fragment.CallOf(fragment.Raw("typeof"), class)
}

// MemberFunction returns recv.name, or recv.name<T, U> with type arguments.
func (Backend) MemberFunction(recv Expression, name string, typeArgs ...Expression) Expression {
	member := fragment.Raw(name)
	if args := fragment.Filter(typeArgs); len(args) > 0 {
		member = fragment.Cat(member, fragment.ListOf("<", ", ", ">", args...))
	}

	return fragment.IdentOf(recv, member)
}

func params(names []string) string {
	return "(" + strings.Join(names, ", ") + ") => "
}

func (Backend) Lambda(names []string, body Expression) Expression {
	return fragment.Cat(fragment.Raw(params(names)), body)
}

func (Backend) LambdaBlock(names []string, body []Statement) Expression {
	return fragment.Expr(fragment.Group{
		fragment.Text(params(names)),
		fragment.Braces(body...),
	})
}

func (Backend) NewArray(elemType string, values []Expression) Expression {
	return fragment.Cat(
		fragment.Raw("new "+elemType+"[] "),
		fragment.ListOf("{", ", ", "}", values...))
}

func (Backend) DictionaryGet(dict, key Expression) Expression {
	return fragment.Cat(dict, fragment.Raw("["), key, fragment.Raw("]"))
}

func (Backend) DictionaryPut(dict, key, value Expression) Statement {
	return fragment.Cat(dict, fragment.Raw("["), key, fragment.Raw("]="), value).ToStatement()
}

func (Backend) Using(resource Expression, body []Statement) Statement {
	return fragment.Compound(
		fragment.Cat(fragment.Raw("using ("), resource, fragment.Raw(")")),
		body...)
}

func (Backend) OutParameter(param Expression) Expression {
	return fragment.Cat(fragment.Raw("out "), param)
}

func (Backend) DeclareOutVar(typ, name string) Statement {
	return fragment.Raw(typ + " " + name).ToStatement()
}

// Attribute returns "[Name(args)]".
func (Backend) Attribute(name string, args []Expression) Statement {
	return fragment.Cat(
		fragment.Raw("["),
		fragment.CallOf(fragment.Raw(name), args...),
		fragment.Raw("]"),
	).ToCompound()
}

func (Backend) Imports(paths []Expression) Statement {
	lines := make([]Statement, len(paths))
	for i, p := range paths {
		lines[i] = fragment.Cat(fragment.Raw("using "), p).ToStatement()
	}

	return fragment.Seq(lines...)
}

func (Backend) Namespace(name Expression, body []Statement) Statement {
	return fragment.Compound(fragment.Cat(fragment.Raw("namespace "), name), body...)
}

func (Backend) Class(name string, extends Expression, body []Statement) Statement {
	head := fragment.Raw("public class " + name)
	if !extends.IsNop() {
		head = fragment.Cat(head, fragment.Raw(" : "), extends)
	}

	return fragment.Compound(head, body...)
}

func (Backend) Method(m factory.MethodDecl) Statement {
	mods := m.Visibility.String()
	if m.Static {
		mods += " static"
	}

	return fragment.Compound(
		fragment.Raw(fmt.Sprintf("%s %s %s(%s)",
			mods, m.Returns, m.Name, factory.ParamList(m.Args))),
		m.Body...)
}

func (Backend) Constructor(class string, args []factory.TypedArgument, body []Statement) Statement {
	return fragment.Compound(
		fragment.Raw("public "+class+"("+factory.ParamList(args)+")"),
		body...)
}

// Property declares "public T Name {get {...} set {...}}", preceded by its
// private backing field when it has one.
func (Backend) Property(p factory.PropertyDecl) Statement {
	var accessors []Statement

	if len(p.Getter) > 0 {
		accessors = append(accessors, fragment.Compound(fragment.Raw("get"), p.Getter...))
	}

	if len(p.Setter) > 0 {
		accessors = append(accessors, fragment.Compound(fragment.Raw("set"), p.Setter...))
	}

	var field Statement
	if p.BackingField != "" {
		field = fragment.Raw("private " + p.Type + " " + p.BackingField).ToStatement()
	}

	return fragment.Seq(
		field,
		fragment.Compound(fragment.Raw("public "+p.Type+" "+p.Name), accessors...),
	)
}
