package factory

import "github.com/hhenriques/codefactory/fragment"

// binary returns the parenthesized chain "(left op right)". An absent side
// leaves the other one alone in parentheses; both absent panics.
func binary(op string, left, right Expression) Expression {
	return fragment.ChainOf(" "+op+" ", true, left, right)
}

// Eq compares two values of type t. Types the backend compares
// structurally render as a call of the backend's equality function.
func (f *Factory) Eq(left, right Expression, t ExprType) Expression {
	if callee, ok := f.backend.StructuralEquality(t); ok {
		return fragment.CallOf(callee, left, right)
	}

	return binary("==", left, right)
}

// Neq is the negation of [Factory.Eq].
func (f *Factory) Neq(left, right Expression, t ExprType) Expression {
	if _, ok := f.backend.StructuralEquality(t); ok {
		return f.Not(f.Eq(left, right, t))
	}

	return binary("!=", left, right)
}

// typed applies the comparison or arithmetic operator op to values of
// type t. Backends may render it differently for some types, e.g. as a
// method call; otherwise, and whenever an operand is absent, it is the
// parenthesized infix chain.
func (f *Factory) typed(op string, left, right Expression, t ExprType) Expression {
	if !left.IsNop() && !right.IsNop() {
		if e, ok := f.backend.Operator(op, left, right, t); ok {
			return e
		}
	}

	return binary(op, left, right)
}

func (f *Factory) Lt(left, right Expression, t ExprType) Expression  { return f.typed("<", left, right, t) }
func (f *Factory) Lte(left, right Expression, t ExprType) Expression { return f.typed("<=", left, right, t) }
func (f *Factory) Gt(left, right Expression, t ExprType) Expression  { return f.typed(">", left, right, t) }
func (f *Factory) Gte(left, right Expression, t ExprType) Expression { return f.typed(">=", left, right, t) }
func (f *Factory) Add(left, right Expression, t ExprType) Expression { return f.typed("+", left, right, t) }
func (f *Factory) Sub(left, right Expression, t ExprType) Expression { return f.typed("-", left, right, t) }
func (f *Factory) Mul(left, right Expression, t ExprType) Expression { return f.typed("*", left, right, t) }
func (f *Factory) Div(left, right Expression, t ExprType) Expression { return f.typed("/", left, right, t) }

func (f *Factory) And(left, right Expression) Expression { return binary("&&", left, right) }
func (f *Factory) Or(left, right Expression) Expression  { return binary("||", left, right) }

func (f *Factory) IsNull(e Expression) Expression    { return binary("==", e, f.Null()) }
func (f *Factory) IsNotNull(e Expression) Expression { return binary("!=", e, f.Null()) }

// Not returns the logical negation "!(e)".
func (f *Factory) Not(e Expression) Expression {
	require("negated expression", e)

	return fragment.Cat(fragment.Raw("!("), e, fragment.Raw(")"))
}

// Neg returns the arithmetic negation "-e".
func (f *Factory) Neg(e Expression) Expression {
	require("negated expression", e)

	return fragment.Cat(fragment.Raw("-"), e)
}

// Concat joins string operands with "+" in parentheses.
func (f *Factory) Concat(parts ...Expression) Expression {
	return fragment.ChainOf(" + ", true, parts...)
}

// Increment returns "++e", or "e++" when post is set.
func (f *Factory) Increment(e Expression, post bool) Expression {
	return affix("++", e, post)
}

// Decrement returns "--e", or "e--" when post is set.
func (f *Factory) Decrement(e Expression, post bool) Expression {
	return affix("--", e, post)
}

func affix(op string, e Expression, post bool) Expression {
	require("operand of "+op, e)

	if post {
		return fragment.Cat(e, fragment.Raw(op))
	}

	return fragment.Cat(fragment.Raw(op), e)
}

// Ternary returns "(cond ? then : els)".
func (f *Factory) Ternary(cond, then, els Expression) Expression {
	require("condition", cond)
	require("true branch", then)
	require("false branch", els)

	return fragment.Cat(fragment.Raw("("), cond, fragment.Raw(" ? "), then,
		fragment.Raw(" : "), els, fragment.Raw(")"))
}

func (f *Factory) Coalesce(left, right Expression) Expression {
	return f.backend.Coalesce(left, right)
}

// Cast returns "((typeName)e)".
func (f *Factory) Cast(typeName string, e Expression) Expression {
	return f.CastExpr(fragment.Ident(typeName), e)
}

// CastExpr is [Factory.Cast] with the type as an expression.
func (f *Factory) CastExpr(typ, e Expression) Expression {
	require("cast type", typ)
	require("cast operand", e)

	return fragment.Cat(fragment.Raw("(("), typ, fragment.Raw(")"), e, fragment.Raw(")"))
}

// Wrap parenthesizes e.
func (f *Factory) Wrap(e Expression) Expression {
	return fragment.Cat(fragment.Raw("("), e, fragment.Raw(")"))
}

// TypeOf returns the runtime type object of the class named class.
func (f *Factory) TypeOf(class string) Expression {
	return f.backend.TypeOf(fragment.Ident(class))
}

// Index returns "coll[idx]". An absent collection yields "[idx]", for
// object initializers.
func (f *Factory) Index(coll, idx Expression) Expression {
	require("index", idx)

	return fragment.Cat(coll, fragment.Raw("["), idx, fragment.Raw("]"))
}

// IndexSetter returns the statement "coll[idx] = value;".
func (f *Factory) IndexSetter(coll, idx, value Expression) Statement {
	return f.Assign(f.Index(coll, idx), value)
}

func (f *Factory) DictionaryGet(dict, key Expression) Expression {
	require("dictionary", dict)
	require("key", key)

	return f.backend.DictionaryGet(dict, key)
}

func (f *Factory) DictionaryPut(dict, key, value Expression) Statement {
	require("dictionary", dict)
	require("key", key)

	return f.backend.DictionaryPut(dict, key, value)
}
