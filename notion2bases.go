// Package notion2bases translates computed-property formula expressions
// from a note-database export's formula language into the formula language
// of an Obsidian Bases-style target descriptor.
//
// Translation is textual: the expression is never evaluated and no full
// grammar is assumed. The engine resolves property references, then
// repeatedly rewrites innermost convertible call sites into target syntax
// until a fixed point is reached. An expression is either translated whole
// or rejected whole; see IsConvertible.
package notion2bases

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/spandigital/notion2bases/schema"
)

// ErrNotConvertible reports that an expression references a function with
// no safe target-language equivalent. The expression is returned to the
// caller untouched so the configured fallback strategy can use it.
var ErrNotConvertible = errors.New("formula cannot be converted")

// maxRewritePasses bounds the fixed-point loop on pathological input.
// Reaching the ceiling is not an error: convertibility was established up
// front, so the partially rewritten string is still the best effort.
const maxRewritePasses = 50

// Translate rewrites a source-language formula expression into the target
// formula language. On failure the original expression is not modified and
// the error names the offending function.
func Translate(expr string) (string, error) {
	return TranslateWithSchema(expr, nil)
}

// TranslateWithSchema is Translate with property-placeholder resolution:
// every {{source:block_property:<id>:...}} token whose id is present in the
// schema is resolved to a property reference before rewriting begins.
// Placeholders with no schema entry are left untouched.
func TranslateWithSchema(expr string, props schema.Schema) (string, error) {
	if props != nil {
		expr = resolvePlaceholders(expr, props)
	}
	if name, blocked := unsupportedName(expr); blocked {
		return "", fmt.Errorf("%w: %s", ErrNotConvertible, name)
	}
	rw := &rewriter{}
	out := rw.rewritePropertyRefs(expr)
	out = rw.extractHazards(out)
	out = rw.rewriteLoop(out)
	return rw.expand(out), nil
}

var blockPropertyToken = regexp.MustCompile(`\{\{source:block_property:([^:}]+)[^}]*\}\}`)

// resolvePlaceholders replaces block-property placeholder tokens with
// property-reference calls using the id→name mapping of the schema.
func resolvePlaceholders(expr string, props schema.Schema) string {
	return blockPropertyToken.ReplaceAllStringFunc(expr, func(tok string) string {
		id := blockPropertyToken.FindStringSubmatch(tok)[1]
		name, ok := props.Name(id)
		if !ok {
			return tok
		}
		return propertyRef + `("` + escapeName(name) + `")`
	})
}

// PropertyAccess returns the target-language property access expression for
// a property name, e.g. `note["Due date"]`.
func PropertyAccess(name string) string {
	return `note["` + escapeName(name) + `"]`
}

func escapeName(name string) string {
	name = strings.ReplaceAll(name, `\`, `\\`)
	return strings.ReplaceAll(name, `"`, `\"`)
}

// rewriter holds the per-call state of one translation: stashed rewrite
// results and extracted hazard calls, both addressed by opaque numbered
// placeholders. The placeholder delimiter is a NUL byte, which cannot occur
// in formula text, so collisions with user input are impossible.
type rewriter struct {
	results []string
	hazards []hazardCall
}

type hazardCall struct {
	target string
	args   string
}

func resultToken(i int) string {
	return "\x00r" + strconv.Itoa(i) + "\x00"
}

func hazardToken(i int) string {
	return "\x00h" + strconv.Itoa(i) + "\x00"
}

// stash records a rewritten fragment and returns its placeholder. Flattened
// placeholders contain no parentheses or brackets, which keeps the
// enclosing call site innermost-eligible on the next pass and prevents the
// loop from re-matching already-produced target syntax.
func (rw *rewriter) stash(text string) string {
	rw.results = append(rw.results, text)
	return resultToken(len(rw.results) - 1)
}

// rewritePropertyRefs replaces every ref("Name") call with the target
// property access form. References whose argument is not a single quoted
// literal are left in place.
func (rw *rewriter) rewritePropertyRefs(s string) string {
	for {
		masked := maskLiterals(s)
		replaced := false
		for _, site := range findCalls(masked) {
			if site.name != propertyRef {
				continue
			}
			end := matchParen(masked, site.open)
			if end < 0 {
				continue
			}
			args := SplitArgs(s[site.open+1 : end])
			if len(args) != 1 || !isQuotedLiteral(args[0]) {
				continue
			}
			tok := rw.stash(PropertyAccess(unquote(args[0])))
			s = s[:site.start] + tok + s[end+1:]
			replaced = true
			break
		}
		if !replaced {
			return s
		}
	}
}

// extractHazards pulls every order-of-evaluation hazard call out of the
// expression before the general loop runs, storing its raw argument text.
// The general loop therefore cannot misread the target call these functions
// eventually produce; expand rebuilds them afterwards.
func (rw *rewriter) extractHazards(s string) string {
	for {
		masked := maskLiterals(s)
		extracted := false
		for _, site := range findCalls(masked) {
			target, ok := hazardFunctions[site.name]
			if !ok {
				continue
			}
			end := matchParen(masked, site.open)
			if end < 0 {
				continue
			}
			rw.hazards = append(rw.hazards, hazardCall{target: target, args: s[site.open+1 : end]})
			s = s[:site.start] + hazardToken(len(rw.hazards)-1) + s[end+1:]
			extracted = true
			break
		}
		if !extracted {
			return s
		}
	}
}

// rewriteLoop repeatedly rewrites innermost call sites (those whose
// argument text contains no unresolved parentheses or brackets) until a
// pass changes nothing or the iteration ceiling is reached. Call sites that
// lack the arguments their rewrite shape needs are left in place.
func (rw *rewriter) rewriteLoop(s string) string {
	type replacement struct {
		start, end int
		token      string
	}
	for pass := 0; pass < maxRewritePasses; pass++ {
		masked := maskLiterals(s)
		var repls []replacement
		for _, site := range findCalls(masked) {
			conv, ok := conversions[site.name]
			if !ok {
				continue
			}
			end := matchParen(masked, site.open)
			if end < 0 {
				continue
			}
			if strings.ContainsAny(masked[site.open+1:end], "([") {
				continue
			}
			out, ok := rw.rewriteCall(site.name, conv, s[site.open+1:end])
			if !ok {
				continue
			}
			repls = append(repls, replacement{start: site.start, end: end + 1, token: rw.stash(out)})
		}
		if len(repls) == 0 {
			break
		}
		// Innermost sites never nest, so the replacements are disjoint and
		// ordered; splice them in a single sweep.
		var b strings.Builder
		prev := 0
		for _, r := range repls {
			b.WriteString(s[prev:r.start])
			b.WriteString(r.token)
			prev = r.end
		}
		b.WriteString(s[prev:])
		s = b.String()
	}
	return s
}

// rewriteCall renders one call site in target syntax according to its
// conversion descriptor. The boolean result is false when the call does not
// carry enough arguments for the rewrite shape; the site then stays in
// source form.
func (rw *rewriter) rewriteCall(name string, conv conversion, inner string) (string, bool) {
	args := SplitArgs(inner)
	switch name {
	case "test":
		// Pattern-match predicate: the pattern must be an inline literal.
		if len(args) < 2 || !isQuotedLiteral(args[1]) {
			return "", false
		}
		return "(" + args[0] + ")." + conv.target + "(" + args[1] + ")", true
	case "dateAdd", "dateSubtract":
		// Date arithmetic with a composed "<amount><unit>" duration literal.
		if len(args) < 3 || !isNumberLiteral(args[1]) || !isQuotedLiteral(args[2]) {
			return "", false
		}
		unit, ok := durationUnits[unquote(args[2])]
		if !ok {
			return "", false
		}
		return "(" + args[0] + " " + conv.op + ` "` + args[1] + unit + `")`, true
	case "map", "filter":
		if len(args) < 2 {
			return "", false
		}
		// The iteration variable may sit inside an already-flattened inner
		// rewrite, so the body is expanded before the whole-token rename.
		body := replaceWholeToken(rw.expand(args[1]), iterationVarSource, iterationVarTarget)
		return "(" + args[0] + ")." + name + "(" + body + ")", true
	case "add":
		// More than two addends become the aggregate pass-through form.
		if len(args) > 2 {
			return "sum(" + strings.Join(args, ", ") + ")", true
		}
	}

	member := conv.target
	if member == "" {
		member = name
	}
	switch conv.kind {
	case kindGlobal:
		return member + "(" + strings.Join(args, ", ") + ")", true
	case kindProperty:
		if len(args) < 1 {
			return "", false
		}
		return "(" + args[0] + ")." + member, true
	case kindMethod:
		if len(args) < 1 {
			return "", false
		}
		return "(" + args[0] + ")." + member + "(" + strings.Join(args[1:], ", ") + ")", true
	case kindOperator:
		switch conv.op {
		case "[0]", "[-1]":
			if len(args) != 1 {
				return "", false
			}
			return "(" + args[0] + ")" + conv.op, true
		case "[]":
			if len(args) != 2 {
				return "", false
			}
			return "(" + args[0] + ")[" + args[1] + "]", true
		case "!":
			if len(args) != 1 {
				return "", false
			}
			return "!(" + args[0] + ")", true
		default:
			if len(args) != 2 {
				return "", false
			}
			return "(" + args[0] + " " + conv.op + " " + args[1] + ")", true
		}
	}
	return "", false
}

// expand resolves every placeholder back into text. Stashed results may
// reference placeholders created earlier, so expansion repeats until the
// string is placeholder-free; the stash count bounds the nesting depth.
func (rw *rewriter) expand(s string) string {
	for i := 0; i <= len(rw.results)+len(rw.hazards); i++ {
		if !strings.Contains(s, "\x00") {
			break
		}
		for j, r := range rw.results {
			s = strings.ReplaceAll(s, resultToken(j), r)
		}
		for j, h := range rw.hazards {
			s = strings.ReplaceAll(s, hazardToken(j), h.target+"("+h.args+")")
		}
	}
	return s
}
