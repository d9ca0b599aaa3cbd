package factory

import "github.com/hhenriques/codefactory/fragment"

// Call calls the function named name.
func (f *Factory) Call(name string, args ...Expression) Expression {
	return f.CallExpr(fragment.Ident(name), args...)
}

// CallExpr calls callee. Absent arguments are skipped.
func (f *Factory) CallExpr(callee Expression, args ...Expression) Expression {
	require("callee", callee)

	return fragment.CallOf(callee, args...)
}

// CallMethod calls the method name of recv.
func (f *Factory) CallMethod(recv Expression, name string, args ...Expression) Expression {
	return f.CallExpr(f.backend.MemberFunction(recv, name), args...)
}

// CallGeneric calls the method name of recv instantiated with typeArgs.
func (f *Factory) CallGeneric(
	recv Expression,
	name string,
	typeArgs []Expression,
	args ...Expression,
) Expression {
	return f.CallExpr(f.backend.MemberFunction(recv, name, typeArgs...), args...)
}

// CallLambda invokes a lambda value.
func (f *Factory) CallLambda(lambda Expression, args ...Expression) Expression {
	return f.CallExpr(lambda, args...)
}

// New instantiates the class named class.
func (f *Factory) New(class string, args ...Expression) Expression {
	return f.NewExpr(fragment.Ident(class), args...)
}

// NewExpr is [Factory.New] with the class as an expression.
func (f *Factory) NewExpr(class Expression, args ...Expression) Expression {
	return fragment.Cat(fragment.Raw("new "), f.CallExpr(class, args...))
}

// NewArray returns an array of elemType initialized with values.
func (f *Factory) NewArray(elemType string, values ...Expression) Expression {
	return f.backend.NewArray(elemType, fragment.Filter(values))
}

// Lambda returns an expression-bodied lambda.
func (f *Factory) Lambda(params []string, body Expression) Expression {
	require("lambda body", body)

	return f.backend.Lambda(params, body)
}

// LambdaBlock returns a lambda with a statement block body.
func (f *Factory) LambdaBlock(params []string, body ...Statement) Expression {
	return f.backend.LambdaBlock(params, fragment.Filter(body))
}

// OutParameter marks an argument as passed by reference for output.
func (f *Factory) OutParameter(param Expression) Expression {
	require("out parameter", param)

	return f.backend.OutParameter(param)
}
