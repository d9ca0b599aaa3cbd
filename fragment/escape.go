package fragment

import "strings"

var escaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`'`, `\'`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// EscapeString replaces backslash, both quote characters, newline, carriage
// return and tab in s by their two-character escape sequences. The
// replacement is a single pass, so inserted backslashes are never escaped
// again.
func EscapeString(s string) string {
	return escaper.Replace(s)
}

// UnescapeString reverses [EscapeString]. Unknown escape sequences and a
// trailing lone backslash are kept as they are.
func UnescapeString(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var sb strings.Builder

	sb.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			sb.WriteByte(c)

			continue
		}

		i++

		switch s[i] {
		case '\\', '"', '\'':
			sb.WriteByte(s[i])
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		default:
			sb.WriteByte('\\')
			sb.WriteByte(s[i])
		}
	}

	return sb.String()
}

// Quote returns s escaped and wrapped in double quotes.
func Quote(s string) Expression {
	return Raw(`"` + EscapeString(s) + `"`)
}
