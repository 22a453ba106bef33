// Package bases provides helpers for the target descriptor format: named,
// typed formula entries and the key sanitization the descriptor requires.
package bases

import (
	"strings"
	"unicode"
)

// Entry is one formula entry of the output descriptor: the sanitized key it
// is stored under, the human-readable property name, and the translated
// formula text embedded verbatim.
type Entry struct {
	Key     string
	Name    string
	Formula string
}

// NewEntry builds a formula entry for a property, deriving the descriptor
// key from the property name.
func NewEntry(name, formula string) Entry {
	return Entry{
		Key:     SanitizeKey(name),
		Name:    name,
		Formula: formula,
	}
}

// SanitizeKey normalizes a property name into a descriptor key: lowercase,
// non-alphanumeric runs collapsed to single underscores, no leading or
// trailing underscore. An empty result falls back to "property".
func SanitizeKey(name string) string {
	var b strings.Builder
	lastUnderscore := true
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastUnderscore = false
			continue
		}
		if !lastUnderscore {
			b.WriteByte('_')
			lastUnderscore = true
		}
	}
	key := strings.TrimRight(b.String(), "_")
	if key == "" {
		return "property"
	}
	return key
}
