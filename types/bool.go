package types

// BoolValue represents a boolean
type BoolValue struct {
	Val bool
}

// NewBool creates a new BoolValue
func NewBool(val bool) BoolValue {
	return BoolValue{Val: val}
}

// Kind returns KIND_BOOL
func (b BoolValue) Kind() Kind {
	return KIND_BOOL
}

// String returns the literal representation
func (b BoolValue) String() string {
	if b.Val {
		return "true"
	}
	return "false"
}

func (BoolValue) runtimeValue() {}
