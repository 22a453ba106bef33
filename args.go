package notion2bases

import "strings"

// SplitArgs splits the inner text of a function call (everything between
// the outermost matched parentheses) into its top-level arguments. A comma
// separates arguments only when it sits outside quoted literals and at
// bracket depth zero; backslash-escaped quote characters inside a literal
// are treated as literal text. Each argument is trimmed of surrounding
// whitespace. Empty input yields an empty list.
func SplitArgs(inner string) []string {
	if strings.TrimSpace(inner) == "" {
		return nil
	}
	var args []string
	var quote byte
	depth := 0
	start := 0
	escaped := false
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		if quote != 0 {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == quote:
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"':
			quote = c
		case '(', '[':
			depth++
		case ')', ']':
			depth--
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(inner[start:i]))
				start = i + 1
			}
		}
	}
	args = append(args, strings.TrimSpace(inner[start:]))
	return args
}
