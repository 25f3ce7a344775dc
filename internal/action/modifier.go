package action

import "strings"

// ModSet is a bitmask of hold-around modifiers.
type ModSet uint8

const (
	ModShift ModSet = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

var modNames = []struct {
	bit  ModSet
	name string
}{
	{ModShift, "shift"},
	{ModCtrl, "ctrl"},
	{ModAlt, "alt"},
	{ModMeta, "meta"},
}

// ParseMod resolves a modifier name. The empty ModSet return doubles as the
// not-found signal alongside ok.
func ParseMod(name string) (ModSet, bool) {
	for _, m := range modNames {
		if m.name == strings.ToLower(name) {
			return m.bit, true
		}
	}
	return 0, false
}

// Has reports whether every bit of m is set in s.
func (s ModSet) Has(m ModSet) bool {
	return s&m == m
}

// String renders the set as "+"-joined names in fixed order.
func (s ModSet) String() string {
	var parts []string
	for _, m := range modNames {
		if s.Has(m.bit) {
			parts = append(parts, m.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}
