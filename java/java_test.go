package java_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hhenriques/codefactory/factory"
	"github.com/hhenriques/codefactory/fragment"
	"github.com/hhenriques/codefactory/java"
)

func render(t *testing.T, f fragment.Fragment) string {
	t.Helper()

	s, err := fragment.RenderString(f, fragment.WithIndent(4))
	require.NoError(t, err)

	return s
}

func TestExpressions(t *testing.T) {
	f := factory.New(java.New())
	a, b := f.Ident("a"), f.Ident("b")

	tests := []struct {
		name string
		expr fragment.Expression
		want string
	}{
		{"long", f.Long(5), "5L"},
		{"decimal", f.Decimal(3.75), `new BigDecimal("3.75")`},
		{"exact decimal", f.DecimalText("12345678901234567.89"), `new BigDecimal("12345678901234567.89")`},
		{"datetime", f.DateTime(2020, 1, 2, 3, 4, 5), "LocalDateTime.of(2020, 1, 2, 3, 4, 5)"},
		{"date", f.Date(2020, 1, 2), "LocalDate.of(2020, 1, 2)"},
		{"binary", f.BinaryData(), "new byte[0]"},
		{"new object", f.NewObject(), "new Object()"},
		{"eq integer", f.Eq(a, b, factory.Integer), "(a == b)"},
		{"eq text", f.Eq(a, b, factory.Text), "Objects.equals(a, b)"},
		{"neq binary", f.Neq(a, b, factory.BinaryData), "!(Arrays.equals(a, b))"},
		{"coalesce", f.Coalesce(a, b), "Objects.requireNonNullElse(a, b)"},
		{"typeof", f.TypeOf("Product"), "Product.class"},
		{
			"generic",
			f.CallGeneric(f.Ident("Collections"), "emptyList", []fragment.Expression{f.Ident("String")}),
			"Collections.<String>emptyList()",
		},
		{"lambda", f.Lambda([]string{"p"}, f.GetProperty(f.Ident("p"), "Price", factory.Decimal)), "(p) -> p.getPrice()"},
		{"dictionary get", f.DictionaryGet(a, f.String("k")), `a.get("k")`},
		{"out", f.OutParameter(a), "a"},
		{
			"property path",
			f.GetPropertyPath(f.Ident("order"),
				fragment.MakePair("Customer", factory.Record),
				fragment.MakePair("Name", factory.Text)),
			"order.getCustomer().getName()",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.expr.String())
		})
	}
}

func TestOperators(t *testing.T) {
	f := factory.New(java.New())
	a, b := f.Ident("a"), f.Ident("b")

	tests := []struct {
		name string
		expr fragment.Expression
		want string
	}{
		{"integer sum", f.Add(a, b, factory.Integer), "(a + b)"},
		{"integer order", f.Lt(a, b, factory.Integer), "(a < b)"},
		{"decimal sum", f.Add(a, b, factory.Decimal), "a.add(b)"},
		{"decimal difference", f.Sub(a, b, factory.Decimal), "a.subtract(b)"},
		{"decimal product", f.Mul(a, b, factory.Decimal), "a.multiply(b)"},
		{"decimal quotient", f.Div(a, b, factory.Decimal), "a.divide(b)"},
		{"decimal lt", f.Lt(a, b, factory.Decimal), "(a.compareTo(b) < 0)"},
		{"decimal gte", f.Gte(a, b, factory.Decimal), "(a.compareTo(b) >= 0)"},
		{
			"nested decimal",
			f.Mul(f.Add(a, b, factory.Decimal), f.Decimal(2), factory.Decimal),
			`a.add(b).multiply(new BigDecimal("2"))`,
		},
		{"text order", f.Gt(a, b, factory.Text), "(a.compareTo(b) > 0)"},
		{"text concat", f.Add(a, b, factory.Text), "(a + b)"},
		{"date before", f.Lt(a, b, factory.Date), "a.isBefore(b)"},
		{"datetime after", f.Gt(a, b, factory.DateTime), "a.isAfter(b)"},
		{"time not after", f.Lte(a, b, factory.Time), "!a.isAfter(b)"},
		{"time not before", f.Gte(a, b, factory.Time), "!a.isBefore(b)"},
		{"date arithmetic", f.Add(a, b, factory.Date), "(a + b)"},
		{"absent operand", f.Add(a, fragment.Expression{}, factory.Decimal), "(a)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.expr.String())
		})
	}
}

func TestStatements(t *testing.T) {
	f := factory.New(java.New())

	tests := []struct {
		name string
		stmt fragment.Statement
		want string
	}{
		{"set property", f.SetProperty(f.This(), "Id", f.Ident("id"), factory.Integer), "this.setId(id);\n"},
		{"dictionary put", f.DictionaryPut(f.Ident("d"), f.String("k"), f.Int(1)), "d.put(\"k\", 1);\n"},
		{"annotation", f.Attribute("Override"), "@Override\n"},
		{"annotation args", f.Attribute("GetMapping", f.String("/products")), "@GetMapping(\"/products\")\n"},
		{"imports", f.Imports(f.Ident("java", "util", "List")), "import java.util.List;\n"},
		{"using", f.Using(f.Ident("conn")), "try (conn) {\n}\n"},
		{
			"internal static method",
			f.DeclareMethod(factory.Internal, "int", "zero", nil, f.ReturnValue(f.Int(0))),
			"int zero() {\n    return 0;\n}\n",
		},
		{
			"catch all",
			f.TryCatchAll(
				[]fragment.Statement{f.Call("open").ToStatement()},
				[]fragment.Statement{f.Rethrow(f.ExceptionVar())}),
			"try {\n    open();\n} catch (Exception ex) {\n    throw ex;\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(t, tt.stmt))
		})
	}
}

func TestClass(t *testing.T) {
	f := factory.New(java.New())

	unit := f.DeclareNamespace(f.Ident("demo", "models"),
		f.DeclareClass("Product", f.Ident("Model"),
			f.DeclareAutoProperty("int", "Id"),
		))

	got := render(t, unit)

	assert.Equal(t, strings.Join([]string{
		"package demo.models;",
		"public class Product extends Model {",
		"    private int _Id;",
		"    public int getId() {",
		"        return _Id;",
		"    }",
		"    public void setId(int value) {",
		"        _Id = value;",
		"    }",
		"}",
	}, "\n")+"\n", got)
}

func TestPropertyWithoutAccessors(t *testing.T) {
	b := java.New()

	assert.True(t, b.Property(factory.PropertyDecl{Type: "int", Name: "Id"}).IsNop())
}
