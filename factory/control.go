package factory

import "github.com/hhenriques/codefactory/fragment"

// Seq returns the non-empty statements in order; see [fragment.Seq].
func (f *Factory) Seq(stmts ...Statement) Statement {
	return fragment.Seq(stmts...)
}

// If returns "if (cond) {then}". The block is emitted even when empty.
func (f *Factory) If(cond Expression, then ...Statement) Statement {
	return f.IfElse(cond, then, nil)
}

// IfElse is [Factory.If] with an else block, which is emitted only when
// some of its statements are not no-ops.
func (f *Factory) IfElse(cond Expression, then, els []Statement) Statement {
	require("if condition", cond)

	g := fragment.Group{
		fragment.Text("if ("), cond.Node(), fragment.Text(") "),
		fragment.Braces(then...),
	}

	if els = fragment.Filter(els); len(els) > 0 {
		g = append(g, fragment.Text(" else "), fragment.Braces(els...))
	}

	return fragment.Stmt(g, false)
}

// While returns "while (cond) {body}".
func (f *Factory) While(cond Expression, body ...Statement) Statement {
	require("loop condition", cond)

	return fragment.Compound(
		fragment.Cat(fragment.Raw("while ("), cond, fragment.Raw(")")),
		body...)
}

// DoWhile returns "do {body} while (cond);".
func (f *Factory) DoWhile(cond Expression, body ...Statement) Statement {
	require("loop condition", cond)

	return fragment.Stmt(fragment.Group{
		fragment.Text("do "),
		fragment.Braces(body...),
		fragment.Text(" while ("), cond.Node(), fragment.Text(")"),
	}, true)
}

// WhileTrue returns an endless loop.
func (f *Factory) WhileTrue(body ...Statement) Statement {
	return f.While(f.backend.TrueCondition(), body...)
}

func (f *Factory) Break() Statement    { return fragment.Raw("break").ToStatement() }
func (f *Factory) Continue() Statement { return fragment.Raw("continue").ToStatement() }

// Return returns from a function without a value.
func (f *Factory) Return() Statement { return fragment.Raw("return").ToStatement() }

// ReturnValue returns v. An absent v gives a bare return.
func (f *Factory) ReturnValue(v Expression) Statement {
	if v.IsNop() {
		return f.Return()
	}

	return fragment.Cat(fragment.Raw("return "), v).ToStatement()
}

// Throw raises arg. An absent arg gives a bare throw.
func (f *Factory) Throw(arg Expression) Statement {
	if arg.IsNop() {
		return fragment.Raw("throw").ToStatement()
	}

	return fragment.Cat(fragment.Raw("throw "), arg).ToStatement()
}

// Rethrow raises again the exception caught in the enclosing catch block,
// named by exVar, or the current one when exVar is absent.
func (f *Factory) Rethrow(exVar Expression) Statement {
	return f.Throw(exVar)
}

// Using scopes the lifetime of a disposable resource to body.
func (f *Factory) Using(resource Expression, body ...Statement) Statement {
	require("resource", resource)

	return f.backend.Using(resource, fragment.Filter(body))
}

// TryCatch returns the try statement t describes.
//
// The catch clause is emitted when t.CatchVar is set and t.Catch has
// statements, the finally clause when t.Finally has statements. When
// neither is emitted the body is returned bare, without try.
func (f *Factory) TryCatch(t Try) Statement {
	catch := fragment.Filter(t.Catch)
	finally := fragment.Filter(t.Finally)

	emitCatch := t.CatchVar != "" && len(catch) > 0
	emitFinally := len(finally) > 0

	if !emitCatch && !emitFinally {
		return f.Seq(t.Body...)
	}

	g := fragment.Group{fragment.Text("try "), fragment.Braces(t.Body...)}

	if emitCatch {
		header := f.backend.CatchAllClause(t.CatchVar)
		if t.ExceptionType != "" {
			header = fragment.Raw(t.ExceptionType + " " + t.CatchVar)
		}

		g = append(g,
			fragment.Text(" catch ("), header.Node(), fragment.Text(") "),
			fragment.Braces(catch...))
	}

	if emitFinally {
		g = append(g, fragment.Text(" finally "), fragment.Braces(finally...))
	}

	return fragment.Stmt(g, false)
}

// TryFinally returns "try {body} finally {finally}".
func (f *Factory) TryFinally(body, finally []Statement) Statement {
	return f.TryCatch(Try{Body: body, Finally: finally})
}

// TryCatchAll catches any exception as [DefaultExceptionVar].
func (f *Factory) TryCatchAll(body, catch []Statement) Statement {
	return f.TryCatch(Try{Body: body, CatchVar: DefaultExceptionVar, Catch: catch})
}

// TryCatchAllFinally is [Factory.TryCatchAll] with a finally clause.
func (f *Factory) TryCatchAllFinally(body, catch, finally []Statement) Statement {
	return f.TryCatch(Try{
		Body:     body,
		CatchVar: DefaultExceptionVar,
		Catch:    catch,
		Finally:  finally,
	})
}
