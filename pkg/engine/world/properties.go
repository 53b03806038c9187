package world

import (
	"strconv"
	"strings"
)

// Properties is a resolved name -> value property set for one tile.
//
// A property only exists when its value is non-empty after trimming
// whitespace. Every accessor follows that rule, so "" and "   " behave
// exactly like a missing entry.
type Properties map[string]string

// String returns the trimmed value of name and whether it exists
func (p Properties) String(name string) (string, bool) {
	raw, ok := p[name]
	if !ok {
		return "", false
	}
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", false
	}
	return v, true
}

// Has returns true if name exists (non-blank)
func (p Properties) Has(name string) bool {
	_, ok := p.String(name)
	return ok
}

// Truthy is an alias of Has used for flag-style markers such as "warp-pad: T"
func (p Properties) Truthy(name string) bool {
	return p.Has(name)
}

// Int returns the integer value of name. Blank or malformed values are
// reported as absent.
func (p Properties) Int(name string) (int, bool) {
	v, ok := p.String(name)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// IntOr returns the integer value of name, or def when absent
func (p Properties) IntOr(name string, def int) int {
	if n, ok := p.Int(name); ok {
		return n
	}
	return def
}

// StringOr returns the value of name, or def when absent
func (p Properties) StringOr(name, def string) string {
	if v, ok := p.String(name); ok {
		return v
	}
	return def
}
