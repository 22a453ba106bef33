package notion2bases

// unsupportedName returns the first function name in the expression that
// blocks translation, either because it is on the explicit deny list or
// because it is unknown to the classification table. Property references
// and method calls already in target syntax are ignored.
func unsupportedName(expr string) (string, bool) {
	masked := maskLiterals(expr)
	for _, site := range findCalls(masked) {
		if site.name == propertyRef {
			continue
		}
		if unsupported[site.name] {
			return site.name, true
		}
		if _, ok := conversions[site.name]; !ok {
			return site.name, true
		}
	}
	return "", false
}

// IsConvertible reports whether every function referenced by the expression
// can be faithfully expressed in the target language. The check is
// conservative and whole-or-nothing: one deny-listed or unknown function
// name rejects the entire expression, and partial translation is never
// attempted.
func IsConvertible(expr string) bool {
	_, blocked := unsupportedName(expr)
	return !blocked
}
