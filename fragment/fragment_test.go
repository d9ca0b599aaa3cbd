package fragment

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// panicErr runs f and returns the error it panicked with.
func panicErr(t *testing.T, f func()) (err error) {
	t.Helper()

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")

		var ok bool
		err, ok = r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
	}()

	f()

	return nil
}

func TestNop(t *testing.T) {
	tests := []struct {
		name string
		frag Fragment
		nop  bool
	}{
		{"zero expression", Expression{}, true},
		{"zero statement", Statement{}, true},
		{"empty raw", Raw(""), true},
		{"raw", Raw("x"), false},
		{"empty group", Cat(Raw(""), Expression{}), true},
		{"group", Cat(Raw(""), Raw("y")), false},
		{"statement of nop", Expression{}.ToStatement(), true},
		{"empty seq", Seq(Statement{}, Statement{}), true},
		{"empty list", ListOf("[", ", ", "]"), false},
		{"hand built nil node", Expr(nil), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.nop, tt.frag.IsNop())

			if tt.nop {
				assert.Empty(t, tt.frag.String())
			}
		})
	}
}

func TestStatement_Terminator(t *testing.T) {
	e := Raw("x = 1")

	assert.Equal(t, "x = 1;\n", e.ToStatement().String())
	assert.True(t, e.ToStatement().Terminated())
	assert.Equal(t, "x = 1\n", e.ToCompound().String())
	assert.False(t, e.ToCompound().Terminated())
	assert.Equal(t, "x = 1", e.ToStatement().ToExpression().String())
}

func TestChainOf(t *testing.T) {
	a, b, c := Raw("a"), Raw("b"), Raw("c")

	tests := []struct {
		name  string
		paren bool
		terms []Expression
		want  string
	}{
		{"binary", true, []Expression{a, b}, "(a + b)"},
		{"three terms", false, []Expression{a, b, c}, "a + b + c"},
		{"single survivor", true, []Expression{{}, b, Raw("")}, "(b)"},
		{"nested", true, []Expression{ChainOf(" + ", true, a, b), c}, "((a + b) + c)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ChainOf(" + ", tt.paren, tt.terms...).String())
		})
	}
}

func TestChainOf_EmptyPanics(t *testing.T) {
	err := panicErr(t, func() { ChainOf(" && ", true, Expression{}, Raw("")) })

	assert.ErrorIs(t, err, ErrEmptyOperands)
}

func TestRender_HandBuiltEmptyChain(t *testing.T) {
	var buf bytes.Buffer

	err := Render(&buf, Expr(Chain{Sep: ", ", Terms: []Node{Nop{}}}))

	require.ErrorIs(t, err, ErrEmptyOperands)
	assert.Empty(t, buf.String())
}

func TestRender_UnknownNode(t *testing.T) {
	_, err := RenderString(Expr(new(Text)))

	assert.ErrorIs(t, err, ErrUnknownNode)
}

type failWriter struct{ after int }

func (w *failWriter) Write(p []byte) (int, error) {
	if w.after <= 0 {
		return 0, errors.New("sink closed")
	}

	w.after--

	return len(p), nil
}

func TestRender_SinkErrorIsReturned(t *testing.T) {
	w := &failWriter{after: 1}
	stmt := Seq(Raw("a").ToStatement(), Raw("b").ToStatement())

	err := Render(w, stmt)

	require.Error(t, err)
	assert.Equal(t, "sink closed", err.Error())
}

func TestCallOf(t *testing.T) {
	assert.Equal(t, "f()", CallOf(Raw("f")).String())
	assert.Equal(t, "f(a, c)", CallOf(Raw("f"), Raw("a"), Expression{}, Raw("c")).String())
	assert.Equal(t, "[]", ListOf("[", ", ", "]", Expression{}).String())
	assert.Equal(t, "{1; 2}", ListOf("{", "; ", "}", Int(1), Int(2)).String())
}

func TestIdent(t *testing.T) {
	assert.Equal(t, "System.Linq", Ident("System", "", "Linq").String())
	assert.Equal(t, "p.Id", IdentOf(Raw("p"), Expression{}, Raw("Id")).String())
	assert.True(t, Ident("", "").IsNop())
	assert.True(t, Ident().IsNop())
}

func TestSeq_FiltersNops(t *testing.T) {
	stmts := []Statement{
		Raw("a()").ToStatement(),
		{},
		Raw("// note").ToCompound(),
		Expression{}.ToStatement(),
		Raw("b()").ToStatement(),
	}

	got := Seq(stmts...).String()

	assert.Equal(t, "a();\n// note\nb();\n", got)
	assert.Len(t, Filter(stmts), 3)
	assert.Empty(t, Filter[Statement](nil))
}

func TestSeq_Nested(t *testing.T) {
	inner := Seq(Raw("a").ToStatement(), Raw("b").ToStatement())
	outer := Seq(inner, Raw("c").ToStatement())

	assert.Equal(t, "a;\nb;\nc;\n", outer.String())
}

func TestCompound_Indentation(t *testing.T) {
	body := Compound(Raw("while (true)"),
		Raw("x++").ToStatement(),
		Compound(Raw("if (x > 3)"), Raw("break").ToStatement()),
	)

	want := strings.Join([]string{
		"while (true) {",
		"    x++;",
		"    if (x > 3) {",
		"        break;",
		"    }",
		"}",
		"",
	}, "\n")

	got, err := RenderString(body, WithIndent(4))
	require.NoError(t, err)
	assert.Equal(t, want, got)

	flat, err := RenderString(body)
	require.NoError(t, err)
	assert.Equal(t, strings.ReplaceAll(want, "    ", ""), flat)

	tabs, err := RenderString(body, WithTabs())
	require.NoError(t, err)
	assert.Equal(t, strings.ReplaceAll(want, "    ", "\t"), tabs)
}

func TestCompound_EmptyBody(t *testing.T) {
	assert.Equal(t, "class C {\n}\n", Compound(Raw("class C"), Statement{}).String())
}

func TestExpression_EqualAndHash(t *testing.T) {
	a := ChainOf(" == ", true, Raw("x"), Raw("1"))
	b := Expr(Group{Text("(x"), Text(" == "), Text("1)")})
	c := Raw("(x == 2)")

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.False(t, a.Equal(c))
	assert.NotEqual(t, a.Hash(), c.Hash())
}

func TestWriteTo_CountsBytes(t *testing.T) {
	var buf bytes.Buffer

	n, err := Raw("return").ToStatement().WriteTo(&buf)

	require.NoError(t, err)
	assert.Equal(t, int64(len("return;\n")), n)
}

func TestPair(t *testing.T) {
	p := MakePair("Name", 3)
	name, n := p.Unpack()

	assert.Equal(t, Pair[string, int]{First: "Name", Second: 3}, p)
	assert.True(t, p == MakePair("Name", 3))
	assert.Equal(t, "Name", name)
	assert.Equal(t, 3, n)
}

func TestFormatYAML(t *testing.T) {
	var buf bytes.Buffer

	stmt := CallOf(Raw("f"), Raw("a")).ToStatement()
	require.NoError(t, FormatYAML(context.Background(), &buf, stmt, 2))

	out := buf.String()
	assert.Contains(t, out, "line:")
	assert.Contains(t, out, "terminate: true")
	assert.Contains(t, out, "callee:")
	assert.Contains(t, out, "text: f")
}

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, FormatJSON(context.Background(), &buf, Raw("x"), 0))
	assert.Equal(t, "{\"text\":\"x\"}\n", buf.String())

	buf.Reset()
	require.NoError(t, FormatJSON(context.Background(), &buf, Expression{}, 0))
	assert.Equal(t, "{\"nop\":true}\n", buf.String())
}
