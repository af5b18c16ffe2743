// Package keys holds the reserved key set and the per-location key
// validation applied to every adventure before play.
package keys

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Reserved global action keys.
const (
	Search    = "S"
	Inventory = "I"
)

var reserved = []string{Search, Inventory}

// Reserved returns the keys consumed by global actions. The returned slice
// is a copy.
func Reserved() []string {
	out := make([]string, len(reserved))
	copy(out, reserved)
	return out
}

// Normalize returns the canonical (upper case) form of a key.
func Normalize(key string) string {
	return cases.Upper(language.Und).String(key)
}

// Equal reports whether two keys match, ignoring case.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// IsReserved reports whether key collides with a global action key.
func IsReserved(key string) bool {
	n := Normalize(key)
	for _, r := range reserved {
		if n == r {
			return true
		}
	}
	return false
}

// IsSingle reports whether key is exactly one character.
func IsSingle(key string) bool {
	return utf8.RuneCountInString(key) == 1
}
