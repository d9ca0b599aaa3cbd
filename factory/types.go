package factory

import (
	"strconv"

	"github.com/hhenriques/codefactory/fragment"
)

// Visibility is the access level of a declared member.
type Visibility int

const (
	Public Visibility = iota
	Protected
	Internal
	Private
)

var visibilityNames = [...]string{
	Public:    "public",
	Protected: "protected",
	Internal:  "internal",
	Private:   "private",
}

// String returns the C-family keyword of v.
func (v Visibility) String() string {
	if v >= 0 && int(v) < len(visibilityNames) {
		return visibilityNames[v]
	}

	return "Visibility(" + strconv.Itoa(int(v)) + ")"
}

// ExprType is the value category of an expression, as far as it affects
// the code emitted for it (equality, for instance).
type ExprType int

const (
	Boolean ExprType = iota
	Decimal
	Integer
	LongInteger
	Text
	Date
	Time
	DateTime
	Object
	BinaryData
	Record
	Unknown
)

var exprTypeNames = [...]string{
	Boolean:     "boolean",
	Decimal:     "decimal",
	Integer:     "integer",
	LongInteger: "long",
	Text:        "text",
	Date:        "date",
	Time:        "time",
	DateTime:    "datetime",
	Object:      "object",
	BinaryData:  "binary",
	Record:      "record",
	Unknown:     "unknown",
}

func (t ExprType) String() string {
	if t >= 0 && int(t) < len(exprTypeNames) {
		return exprTypeNames[t]
	}

	return "ExprType(" + strconv.Itoa(int(t)) + ")"
}

// TypedArgument is one formal parameter.
type TypedArgument struct {
	Type string
	Name string
}

// Arg returns the parameter "typ name".
func Arg(typ, name string) TypedArgument {
	return TypedArgument{Type: typ, Name: name}
}

// Try describes one try statement. Clauses whose body is empty are left out.
type Try struct {
	Body []fragment.Statement

	// CatchVar names the caught exception. The catch clause is emitted only
	// when CatchVar is set and Catch is not empty.
	CatchVar string
	// ExceptionType restricts the catch clause. When empty the backend's
	// catch-all clause is used.
	ExceptionType string
	Catch         []fragment.Statement

	Finally []fragment.Statement
}

// MethodDecl is what a backend needs to declare a method.
type MethodDecl struct {
	Visibility Visibility
	Static     bool
	Returns    string
	Name       string
	Args       []TypedArgument
	Body       []fragment.Statement
}

// PropertyDecl is what a backend needs to declare a property. Getter and
// Setter are already filtered; an empty one means no accessor. BackingField,
// when set, names a private field to declare along with the property.
type PropertyDecl struct {
	Type         string
	Name         string
	BackingField string
	Getter       []fragment.Statement
	Setter       []fragment.Statement
}
