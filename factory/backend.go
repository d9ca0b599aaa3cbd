package factory

import "github.com/hhenriques/codefactory/fragment"

type (
	Expression = fragment.Expression
	Statement  = fragment.Statement
)

// Backend supplies the syntax that differs between output languages.
// Everything the languages share is composed once by [Factory].
//
// Backends are stateless values; callers construct the one they need.
type Backend interface {
	// Name identifies the backend in a [Registry].
	Name() string
	// FileExtension is the usual extension of source files, with the dot.
	FileExtension() string

	Long(v int64) Expression
	// Decimal renders an exact decimal given in the canonical form returned
	// by [ParseDecimal].
	Decimal(text string) Expression
	DateTime(year, month, day, hour, minute, second int) Expression
	Date(year, month, day int) Expression
	BinaryData() Expression
	// ObjectType names the root object type.
	ObjectType() string

	// TrueCondition is the loop condition of an endless loop.
	TrueCondition() Expression
	// CatchAllClause declares varName as an exception of any type.
	CatchAllClause(varName string) Expression
	Coalesce(left, right Expression) Expression
	// StructuralEquality returns the callee comparing two values of type t
	// when == would compare identity, and false otherwise.
	StructuralEquality(t ExprType) (Expression, bool)
	// Operator renders the comparison or arithmetic operator op ("<", "+",
	// ...) over two present values of type t, and returns false when the
	// parenthesized infix form applies.
	Operator(op string, left, right Expression, t ExprType) (Expression, bool)
	TypeOf(class Expression) Expression
	// MemberFunction names the method name of recv, instantiated with
	// typeArgs when there are any.
	MemberFunction(recv Expression, name string, typeArgs ...Expression) Expression
	Lambda(params []string, body Expression) Expression
	LambdaBlock(params []string, body []Statement) Expression
	NewArray(elemType string, values []Expression) Expression
	DictionaryGet(dict, key Expression) Expression
	DictionaryPut(dict, key, value Expression) Statement
	Using(resource Expression, body []Statement) Statement
	OutParameter(param Expression) Expression
	DeclareOutVar(typ, name string) Statement

	Attribute(name string, args []Expression) Statement
	Imports(paths []Expression) Statement
	Namespace(name Expression, body []Statement) Statement
	Class(name string, extends Expression, body []Statement) Statement
	Method(m MethodDecl) Statement
	Constructor(class string, args []TypedArgument, body []Statement) Statement
	Property(p PropertyDecl) Statement
}

// PropertyAccessor is implemented by backends whose properties are not
// read and written as recv.Name.
type PropertyAccessor interface {
	GetProperty(recv Expression, name string, t ExprType) Expression
	SetProperty(recv Expression, name string, value Expression, t ExprType) Statement
}

// TypeNamer is implemented by backends that name the built-in value types.
// [Factory.TypeName] falls back to the [ExprType] name otherwise.
type TypeNamer interface {
	TypeName(t ExprType) string
}
