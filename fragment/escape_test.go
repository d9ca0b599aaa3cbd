package fragment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Tomato Soup", "Tomato Soup"},
		{"backslash", `C:\temp`, `C:\\temp`},
		{"double quote", `say "hi"`, `say \"hi\"`},
		{"single quote", "it's", `it\'s`},
		{"newline", "a\nb", `a\nb`},
		{"carriage return", "a\r\nb", `a\r\nb`},
		{"tab", "a\tb", `a\tb`},
		{"escaped escape", `\n`, `\\n`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EscapeString(tt.in)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, UnescapeString(got))
		})
	}
}

func TestUnescapeString_Unknown(t *testing.T) {
	assert.Equal(t, `\x`, UnescapeString(`\x`))
	assert.Equal(t, `a\`, UnescapeString(`a\`))
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `"Yo-yo \"deluxe\""`, Quote(`Yo-yo "deluxe"`).String())
	assert.Equal(t, `""`, Quote("").String())
	assert.False(t, Quote("").IsNop())
}

func FuzzEscapeRoundTrip(f *testing.F) {
	for _, seed := range []string{"", `\`, `\\n`, "\"'\n\r\t", "naïve\x00"} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, s string) {
		if got := UnescapeString(EscapeString(s)); got != s {
			t.Errorf("round trip of %q gave %q", s, got)
		}
	})
}
