package types

import "math"

// Epsilon is the tolerance for numeric equality
const Epsilon = 0.0000001

// Same implements the language's "=" relation. Pairings with no defined
// meaning compare false; an invalid operand is an error.
func Same(left, right Value) (Value, error) {
	if KindOf(left) == KIND_INVALID || KindOf(right) == KIND_INVALID {
		return nil, NewError(E_INVALID, "invalid value")
	}

	switch l := left.(type) {
	case StrListValue:
		if r, ok := right.(StrValue); ok {
			return NewBool(l.Contains(r.Value())), nil
		}
	case StrValue:
		switch r := right.(type) {
		case StrListValue:
			return Same(r, l)
		case StrValue:
			return NewBool(l.Value() == r.Value()), nil
		}
	case RangeValue:
		if _, ok := right.(DoubleValue); ok {
			return Same(right, left)
		}
	case DoubleValue:
		switch r := right.(type) {
		case DoubleValue:
			return NewBool(math.Abs(l.Val-r.Val) < Epsilon), nil
		case RangeValue:
			return NewBool(r.Contains(l.Val)), nil
		}
	}

	return NewBool(false), nil
}
