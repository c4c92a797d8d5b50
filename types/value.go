package types

// Value is the runtime value produced by every evaluation step.
// The set of implementations is closed: DoubleValue, BoolValue, StrValue,
// StrListValue, RangeValue and InvalidValue.
type Value interface {
	Kind() Kind
	String() string // display form
	runtimeValue()
}

// KindOf returns the kind of v, treating nil as invalid
func KindOf(v Value) Kind {
	if v == nil {
		return KIND_INVALID
	}
	return v.Kind()
}

// InvalidValue is the "no value" sentinel. Any operation touching it fails.
type InvalidValue struct{}

// Invalid is the shared sentinel instance
var Invalid = InvalidValue{}

func (InvalidValue) Kind() Kind     { return KIND_INVALID }
func (InvalidValue) String() string { return "<invalid>" }
func (InvalidValue) runtimeValue()  {}
