// Package java emits Java.
//
// Java has no properties: a property is a private field with getName and
// setName methods, and reading or writing one calls them. There are no out
// parameters either; OutParameter passes the argument through unchanged.
package java

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

// Backend is the Java backend. The zero value is ready to use.
type Backend struct{}

var (
	_ factory.Backend          = Backend{}
	_ factory.PropertyAccessor = Backend{}
	_ factory.TypeNamer        = Backend{}
)

// New returns the Java backend.
func New() factory.Backend { return Backend{} }

func (Backend) Name() string          { return "java" }
func (Backend) FileExtension() string { return ".java" }

func (Backend) Long(v int64) Expression {
	return fragment.Raw(strconv.FormatInt(v, 10) + "L")
}

func (Backend) Decimal(text string) Expression {
	return fragment.CallOf(fragment.Raw("new BigDecimal"), fragment.Quote(text))
}

func (Backend) DateTime(year, month, day, hour, minute, second int) Expression {
	return fragment.Raw(fmt.Sprintf("LocalDateTime.of(%d, %d, %d, %d, %d, %d)",
		year, month, day, hour, minute, second))
}

func (Backend) Date(year, month, day int) Expression {
	return fragment.Raw(fmt.Sprintf("LocalDate.of(%d, %d, %d)", year, month, day))
}

func (Backend) BinaryData() Expression { return fragment.Raw("new byte[0]") }
func (Backend) ObjectType() string     { return "Object" }

var typeNames = map[factory.ExprType]string{
	factory.Boolean:     "boolean",
	factory.Decimal:     "BigDecimal",
	factory.Integer:     "int",
	factory.LongInteger: "long",
	factory.Text:        "String",
	factory.Date:        "LocalDate",
	factory.Time:        "LocalTime",
	factory.DateTime:    "LocalDateTime",
	factory.Object:      "Object",
	factory.BinaryData:  "byte[]",
}

func (Backend) TypeName(t factory.ExprType) string { return typeNames[t] }

func (Backend) TrueCondition() Expression { return fragment.Raw("true") }

func (Backend) CatchAllClause(varName string) Expression {
	return fragment.Raw("Exception " + varName)
}

func (Backend) Coalesce(left, right Expression) Expression {
	return fragment.CallOf(fragment.Ident("Objects", "requireNonNullElse"), left, right)
}

var decimalMethods = map[string]string{
	"+": "add",
	"-": "subtract",
	"*": "multiply",
	"/": "divide",
}

// Operator maps arithmetic on BigDecimal to its methods, orders
// BigDecimal and String with compareTo, and orders the java.time types
// with isBefore and isAfter.
func (Backend) Operator(op string, left, right Expression, t factory.ExprType) (Expression, bool) {
	method := func(name string) Expression {
		return fragment.CallOf(fragment.IdentOf(left, fragment.Raw(name)), right)
	}

	name, arithmetic := decimalMethods[op]

	switch t {
	case factory.Decimal:
		if arithmetic {
			return method(name), true
		}

		return fragment.ChainOf(" "+op+" ", true, method("compareTo"), fragment.Raw("0")), true

	case factory.Text:
		if !arithmetic {
			return fragment.ChainOf(" "+op+" ", true, method("compareTo"), fragment.Raw("0")), true
		}

	case factory.Date, factory.Time, factory.DateTime:
		switch op {
		case "<":
			return method("isBefore"), true
		case ">":
			return method("isAfter"), true
		case "<=":
			return fragment.Cat(fragment.Raw("!"), method("isAfter")), true
		case ">=":
			return fragment.Cat(fragment.Raw("!"), method("isBefore")), true
		}
	}

	return Expression{}, false
}

func (Backend) StructuralEquality(t factory.ExprType) (Expression, bool) {
	switch t {
	case factory.BinaryData:
		return fragment.Ident("Arrays", "equals"), true
	case factory.Object, factory.Text, factory.Decimal,
		factory.Date, factory.Time, factory.DateTime, factory.Record:
		return fragment.Ident("Objects", "equals"), true
	default:
		return Expression{}, false
	}
}

func (Backend) TypeOf(class Expression) Expression {
	return fragment.Cat(class, fragment.Raw(".class"))
}

// MemberFunction returns recv.name, or recv.<T, U>name with type arguments.
func (Backend) MemberFunction(recv Expression, name string, typeArgs ...Expression) Expression {
	member := fragment.Raw(name)
	if args := fragment.Filter(typeArgs); len(args) > 0 {
		member = fragment.Cat(fragment.ListOf("<", ", ", ">", args...), member)
	}

	return fragment.IdentOf(recv, member)
}

func params(names []string) string {
	return "(" + strings.Join(names, ", ") + ") -> "
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
	return fragment.CallOf(fragment.IdentOf(dict, fragment.Raw("get")), key)
}

func (Backend) DictionaryPut(dict, key, value Expression) Statement {
	return fragment.CallOf(fragment.IdentOf(dict, fragment.Raw("put")), key, value).ToStatement()
}

// Using returns a try-with-resources statement.
func (Backend) Using(resource Expression, body []Statement) Statement {
	return fragment.Compound(
		fragment.Cat(fragment.Raw("try ("), resource, fragment.Raw(")")),
		body...)
}

func (Backend) OutParameter(param Expression) Expression { return param }

func (Backend) DeclareOutVar(typ, name string) Statement {
	return fragment.Raw(typ + " " + name).ToStatement()
}

// Attribute returns the annotation "@Name(args)", or "@Name" without
// arguments.
func (Backend) Attribute(name string, args []Expression) Statement {
	if len(args) == 0 {
		return fragment.Raw("@" + name).ToCompound()
	}

	return fragment.CallOf(fragment.Raw("@"+name), args...).ToCompound()
}

func (Backend) Imports(paths []Expression) Statement {
	lines := make([]Statement, len(paths))
	for i, p := range paths {
		lines[i] = fragment.Cat(fragment.Raw("import "), p).ToStatement()
	}

	return fragment.Seq(lines...)
}

// Namespace returns a package clause followed by body. Java packages do
// not enclose their members.
func (Backend) Namespace(name Expression, body []Statement) Statement {
	return fragment.Seq(append(
		[]Statement{fragment.Cat(fragment.Raw("package "), name).ToStatement()},
		body...)...)
}

func (Backend) Class(name string, extends Expression, body []Statement) Statement {
	head := fragment.Raw("public class " + name)
	if !extends.IsNop() {
		head = fragment.Cat(head, fragment.Raw(" extends "), extends)
	}

	return fragment.Compound(head, body...)
}

// modifiers returns the modifier keywords of a member followed by a space.
// Java spells internal visibility by omitting the keyword.
func modifiers(vis factory.Visibility, static bool) string {
	var mods []string

	if vis != factory.Internal {
		mods = append(mods, vis.String())
	}

	if static {
		mods = append(mods, "static")
	}

	if len(mods) == 0 {
		return ""
	}

	return strings.Join(mods, " ") + " "
}

func (Backend) Method(m factory.MethodDecl) Statement {
	return fragment.Compound(
		fragment.Raw(fmt.Sprintf("%s%s %s(%s)",
			modifiers(m.Visibility, m.Static), m.Returns, m.Name,
			factory.ParamList(m.Args))),
		m.Body...)
}

func (Backend) Constructor(class string, args []factory.TypedArgument, body []Statement) Statement {
	return fragment.Compound(
		fragment.Raw("public "+class+"("+factory.ParamList(args)+")"),
		body...)
}

func getter(name string) string { return "get" + name }
func setter(name string) string { return "set" + name }

// Property declares the backing field, when there is one, and an accessor
// method for each non-empty accessor body.
func (Backend) Property(p factory.PropertyDecl) Statement {
	var stmts []Statement

	if p.BackingField != "" {
		stmts = append(stmts,
			fragment.Raw("private "+p.Type+" "+p.BackingField).ToStatement())
	}

	if len(p.Getter) > 0 {
		stmts = append(stmts, fragment.Compound(
			fragment.Raw("public "+p.Type+" "+getter(p.Name)+"()"),
			p.Getter...))
	}

	if len(p.Setter) > 0 {
		stmts = append(stmts, fragment.Compound(
			fragment.Raw("public void "+setter(p.Name)+"("+p.Type+" value)"),
			p.Setter...))
	}

	return fragment.Seq(stmts...)
}

func (Backend) GetProperty(recv Expression, name string, _ factory.ExprType) Expression {
	return fragment.CallOf(fragment.IdentOf(recv, fragment.Raw(getter(name))))
}

func (Backend) SetProperty(recv Expression, name string, value Expression, _ factory.ExprType) Statement {
	return fragment.CallOf(fragment.IdentOf(recv, fragment.Raw(setter(name))), value).ToStatement()
}
