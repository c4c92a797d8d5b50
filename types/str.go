package types

import "strconv"

// StrValue represents a string
type StrValue struct {
	val string
}

// NewStr creates a new string value
func NewStr(s string) StrValue {
	return StrValue{val: s}
}

// Kind returns KIND_STRING
func (s StrValue) Kind() Kind {
	return KIND_STRING
}

// String returns the quoted literal form
func (s StrValue) String() string {
	return strconv.Quote(s.val)
}

// Value returns the internal string value
func (s StrValue) Value() string {
	return s.val
}

func (StrValue) runtimeValue() {}
