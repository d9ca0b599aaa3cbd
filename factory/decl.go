package factory

import (
	"log/slog"
	"strings"

	"github.com/hhenriques/codefactory/fragment"
)

// DeclareVar returns "typ name;".
func (f *Factory) DeclareVar(typ, name string) Statement {
	return fragment.Raw(typ + " " + name).ToStatement()
}

// DeclareVarInit returns "typ name = value;". An absent value declares the
// variable uninitialized.
func (f *Factory) DeclareVarInit(typ, name string, value Expression) Statement {
	if value.IsNop() {
		return f.DeclareVar(typ, name)
	}

	return fragment.Cat(fragment.Raw(typ+" "+name+" = "), value).ToStatement()
}

// DeclareVarInferred declares name with the type of value.
func (f *Factory) DeclareVarInferred(name string, value Expression) Statement {
	require("initializer of "+name, value)

	return f.DeclareVarInit("var", name, value)
}

// Assign returns "target = value;".
func (f *Factory) Assign(target, value Expression) Statement {
	require("assignment target", target)
	require("assigned value", value)

	return fragment.Cat(target, fragment.Raw(" = "), value).ToStatement()
}

// DeclareField returns "vis typ name[ = init];".
func (f *Factory) DeclareField(vis Visibility, typ, name string, init Expression) Statement {
	return f.DeclareVarInit(vis.String()+" "+typ, name, init)
}

// DeclareOutVar declares a variable to receive an out argument.
func (f *Factory) DeclareOutVar(typ, name string) Statement {
	return f.backend.DeclareOutVar(typ, name)
}

// DeclareAutoProperty declares a property stored in a private backing
// field named after it.
func (f *Factory) DeclareAutoProperty(typ, name string) Statement {
	field := fragment.Raw(backingFieldPrefix + name)

	return f.backend.Property(PropertyDecl{
		Type:         typ,
		Name:         name,
		BackingField: backingFieldPrefix + name,
		Getter:       []Statement{f.ReturnValue(field)},
		Setter:       []Statement{f.Assign(field, fragment.Raw(setterArg))},
	})
}

// DeclareProperty declares a property with the given accessor bodies. An
// accessor is emitted only when its body has statements. A property with
// neither is still declared, and the request is logged as a warning.
func (f *Factory) DeclareProperty(typ, name string, getter, setter []Statement) Statement {
	p := PropertyDecl{
		Type:   typ,
		Name:   name,
		Getter: fragment.Filter(getter),
		Setter: fragment.Filter(setter),
	}

	if len(p.Getter) == 0 && len(p.Setter) == 0 {
		f.logger.Warn("property declared without accessors",
			slog.String("backend", f.backend.Name()),
			slog.String("property", name))
	}

	return f.backend.Property(p)
}

// GetProperty reads the property name of recv.
func (f *Factory) GetProperty(recv Expression, name string, t ExprType) Expression {
	if pa, ok := f.backend.(PropertyAccessor); ok {
		return pa.GetProperty(recv, name, t)
	}

	return fragment.IdentOf(recv, fragment.Raw(name))
}

// GetPropertyPath reads a chain of properties starting at recv.
func (f *Factory) GetPropertyPath(
	recv Expression,
	path ...fragment.Pair[string, ExprType],
) Expression {
	for _, p := range path {
		recv = f.GetProperty(recv, p.First, p.Second)
	}

	return recv
}

// SetProperty writes value to the property name of recv.
func (f *Factory) SetProperty(recv Expression, name string, value Expression, t ExprType) Statement {
	if pa, ok := f.backend.(PropertyAccessor); ok {
		require("assigned value", value)

		return pa.SetProperty(recv, name, value, t)
	}

	return f.Assign(fragment.IdentOf(recv, fragment.Raw(name)), value)
}

// Imports declares the non-empty import paths, one per line.
func (f *Factory) Imports(paths ...Expression) Statement {
	paths = fragment.Filter(paths)
	if len(paths) == 0 {
		return Statement{}
	}

	return f.backend.Imports(paths)
}

func (f *Factory) DeclareNamespace(name Expression, body ...Statement) Statement {
	require("namespace name", name)

	return f.backend.Namespace(name, fragment.Filter(body))
}

// DeclareClass declares a public class. extends may be absent.
func (f *Factory) DeclareClass(name string, extends Expression, body ...Statement) Statement {
	return f.backend.Class(name, extends, fragment.Filter(body))
}

// DeclareNestedClass declares a class with default visibility, as found
// inside another class.
func (f *Factory) DeclareNestedClass(name string, body ...Statement) Statement {
	return fragment.Compound(fragment.Raw("class "+name), body...)
}

func (f *Factory) DeclareMethod(
	vis Visibility,
	returns, name string,
	args []TypedArgument,
	body ...Statement,
) Statement {
	return f.backend.Method(MethodDecl{
		Visibility: vis,
		Returns:    returns,
		Name:       name,
		Args:       args,
		Body:       fragment.Filter(body),
	})
}

// DeclareStaticMethod declares a public static method.
func (f *Factory) DeclareStaticMethod(
	returns, name string,
	args []TypedArgument,
	body ...Statement,
) Statement {
	return f.backend.Method(MethodDecl{
		Visibility: Public,
		Static:     true,
		Returns:    returns,
		Name:       name,
		Args:       args,
		Body:       fragment.Filter(body),
	})
}

func (f *Factory) DeclareConstructor(class string, args []TypedArgument, body ...Statement) Statement {
	return f.backend.Constructor(class, args, fragment.Filter(body))
}

// Attribute annotates the declaration that follows.
func (f *Factory) Attribute(name string, args ...Expression) Statement {
	return f.backend.Attribute(name, fragment.Filter(args))
}

// Comment returns a line comment. Each line of text becomes a comment line.
func (f *Factory) Comment(text string) Statement {
	return fragment.Raw("// " + strings.ReplaceAll(text, "\n", "\n// ")).ToCompound()
}

// BlockComment returns a block comment. Occurrences of the closing
// delimiter in text are removed, including those formed by a removal.
func (f *Factory) BlockComment(text string) Statement {
	for strings.Contains(text, "*/") {
		text = strings.ReplaceAll(text, "*/", "")
	}

	return fragment.Raw("/*" + text + "*/").ToCompound()
}

// ParamList renders args as "T a, U b".
func ParamList(args []TypedArgument) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.Type + " " + a.Name
	}

	return strings.Join(parts, ", ")
}

// TypeName returns the backend's name for values of type t.
func (f *Factory) TypeName(t ExprType) string {
	if tn, ok := f.backend.(TypeNamer); ok {
		if name := tn.TypeName(t); name != "" {
			return name
		}
	}

	return t.String()
}
