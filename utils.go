package notion2bases

import (
	"regexp"
	"strconv"
	"strings"
)

// maskLiterals returns a copy of s with the contents of every quoted string
// literal replaced by spaces. The copy has the same length as s, so indexes
// found while scanning the mask are valid in the original. Quote characters
// themselves are preserved.
func maskLiterals(s string) string {
	b := []byte(s)
	var quote byte
	escaped := false
	for i := 0; i < len(b); i++ {
		c := b[i]
		if quote == 0 {
			if c == '\'' || c == '"' {
				quote = c
			}
			continue
		}
		switch {
		case escaped:
			escaped = false
			b[i] = ' '
		case c == '\\':
			escaped = true
			b[i] = ' '
		case c == quote:
			quote = 0
		default:
			b[i] = ' '
		}
	}
	return string(b)
}

// callSite is one source-language function call found in an expression:
// name starts at start, its argument list opens at open.
type callSite struct {
	name  string
	start int
	open  int
}

var callSiteRegexp = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*\s*\(`)

// findCalls locates every function-call site in the masked expression text.
// Names preceded by a member-access dot are method invocations already in
// target syntax and are not reported.
func findCalls(masked string) []callSite {
	var sites []callSite
	for _, loc := range callSiteRegexp.FindAllStringIndex(masked, -1) {
		start, end := loc[0], loc[1]
		if start > 0 {
			prev := masked[start-1]
			if prev == '.' || isIdentChar(prev) {
				continue
			}
		}
		name := strings.TrimRight(masked[start:end-1], " \t")
		sites = append(sites, callSite{name: name, start: start, open: end - 1})
	}
	return sites
}

func isIdentChar(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// matchParen returns the index of the parenthesis closing the one at open,
// or -1 when the call is unterminated. The text must be masked so literal
// parentheses inside strings do not affect the depth count.
func matchParen(masked string, open int) int {
	depth := 0
	for i := open; i < len(masked); i++ {
		switch masked[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// replaceWholeToken replaces every whole-word occurrence of old outside
// string literals with new. Partial identifier matches (e.g. "current"
// inside "concurrent") are left alone.
func replaceWholeToken(s, old, new string) string {
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(old) + `\b`)
	masked := maskLiterals(s)
	locs := re.FindAllStringIndex(masked, -1)
	if len(locs) == 0 {
		return s
	}
	var b strings.Builder
	prev := 0
	for _, loc := range locs {
		b.WriteString(s[prev:loc[0]])
		b.WriteString(new)
		prev = loc[1]
	}
	b.WriteString(s[prev:])
	return b.String()
}

// isQuotedLiteral reports whether s is exactly one quoted string literal.
func isQuotedLiteral(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return false
	}
	quote := s[0]
	if quote != '\'' && quote != '"' || s[len(s)-1] != quote {
		return false
	}
	masked := maskLiterals(s)
	// A single literal masks to quote + spaces + quote.
	return strings.TrimSpace(masked[1:len(masked)-1]) == ""
}

// unquote strips the surrounding quotes from a literal and resolves
// backslash-escaped quote characters.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if !isQuotedLiteral(s) {
		return s
	}
	quote := s[0]
	inner := s[1 : len(s)-1]
	inner = strings.ReplaceAll(inner, `\`+string(quote), string(quote))
	return inner
}

// isNumberLiteral reports whether s is a plain numeric literal.
func isNumberLiteral(s string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil
}
