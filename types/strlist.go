package types

import "strings"

// StrListValue is an ordered list of strings, used for multi-valued
// results such as the active input commands.
type StrListValue struct {
	elements []string
}

// NewStrList creates a list value. The input slice is copied.
func NewStrList(elements []string) StrListValue {
	copied := make([]string, len(elements))
	copy(copied, elements)
	return StrListValue{elements: copied}
}

// Kind returns KIND_STRING_LIST
func (l StrListValue) Kind() Kind {
	return KIND_STRING_LIST
}

// String returns {"a", "b"}
func (l StrListValue) String() string {
	parts := make([]string, len(l.elements))
	for i, s := range l.elements {
		parts[i] = NewStr(s).String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Len returns the number of elements
func (l StrListValue) Len() int {
	return len(l.elements)
}

// Elements returns a copy of the elements
func (l StrListValue) Elements() []string {
	out := make([]string, len(l.elements))
	copy(out, l.elements)
	return out
}

// Contains reports whether s is a member of the list
func (l StrListValue) Contains(s string) bool {
	for _, check := range l.elements {
		if check == s {
			return true
		}
	}
	return false
}

func (StrListValue) runtimeValue() {}
