// Package category manages the registry of labels offered when
// creating a ticket. Labels are plain strings; tickets snapshot the
// label text at creation time, so removing a label never touches
// existing tickets.
package category

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Normalize formats a raw label for display consistency: first rune
// uppercased, the rest lowercased.
func Normalize(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(first)) + strings.ToLower(name[size:])
}

// Validate normalizes a raw label and rejects empty or duplicate
// entries against the existing registry.
func Validate(name string, existing []string) (string, error) {
	normalized := Normalize(name)
	if normalized == "" {
		return "", ErrEmptyName()
	}
	for _, c := range existing {
		if c == normalized {
			return "", ErrDuplicate()
		}
	}
	return normalized, nil
}
