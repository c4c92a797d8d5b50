package types

import "fmt"

// RangeKind is the boundary syntax a range was written with
type RangeKind int

const (
	AllInclusive                RangeKind = iota // [a, b]
	AllExclusive                                 // (a, b)
	LeftInclusiveRightExclusive                  // [a, b)
	LeftExclusiveRightInclusive                  // (a, b]
)

// String returns the bracket pair for the kind
func (k RangeKind) String() string {
	switch k {
	case AllInclusive:
		return "[]"
	case AllExclusive:
		return "()"
	case LeftInclusiveRightExclusive:
		return "[)"
	case LeftExclusiveRightInclusive:
		return "(]"
	default:
		return "??"
	}
}

// Brackets returns the opening and closing bracket characters
func (k RangeKind) Brackets() (string, string) {
	s := k.String()
	return s[:1], s[1:]
}

// RangeValue holds canonical exclusive bounds: a number x is a member
// iff Low < x < High.
type RangeValue struct {
	Low  int
	High int
}

// NewRange normalizes the four range syntaxes into exclusive bounds
func NewRange(low, high int, kind RangeKind) (RangeValue, error) {
	switch kind {
	case AllInclusive:
		return RangeValue{Low: low - 1, High: high + 1}, nil
	case AllExclusive:
		return RangeValue{Low: low, High: high}, nil
	case LeftInclusiveRightExclusive:
		return RangeValue{Low: low - 1, High: high}, nil
	case LeftExclusiveRightInclusive:
		return RangeValue{Low: low, High: high + 1}, nil
	}
	return RangeValue{}, NewError(E_INVALID, "Unexpected range type")
}

// Kind returns KIND_RANGE
func (r RangeValue) Kind() Kind {
	return KIND_RANGE
}

// String renders the canonical exclusive form
func (r RangeValue) String() string {
	return fmt.Sprintf("(%d, %d)", r.Low, r.High)
}

// Contains reports whether x lies strictly between the bounds
func (r RangeValue) Contains(x float64) bool {
	return x > float64(r.Low) && x < float64(r.High)
}

func (RangeValue) runtimeValue() {}
