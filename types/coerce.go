package types

import "fmt"

func mismatch(v Value, expected string) error {
	return NewError(E_TYPE, fmt.Sprintf("Not a %s instead was %s", expected, KindOf(v)))
}

// ToString accepts only strings
func ToString(v Value) (string, error) {
	if s, ok := v.(StrValue); ok {
		return s.Value(), nil
	}
	return "", mismatch(v, "string")
}

// ToNumber accepts doubles and booleans (true is 1, false is 0)
func ToNumber(v Value) (float64, error) {
	switch n := v.(type) {
	case DoubleValue:
		return n.Val, nil
	case BoolValue:
		if n.Val {
			return 1, nil
		}
		return 0, nil
	}
	return 0, mismatch(v, "number")
}

// ToBool accepts booleans and doubles (nonzero is true)
func ToBool(v Value) (bool, error) {
	switch b := v.(type) {
	case BoolValue:
		return b.Val, nil
	case DoubleValue:
		return b.Val != 0, nil
	}
	return false, mismatch(v, "bool")
}

// ToRangeLow returns the canonical low bound of a range
func ToRangeLow(v Value) (int, error) {
	if r, ok := v.(RangeValue); ok {
		return r.Low, nil
	}
	return 0, mismatch(v, "range")
}

// ToRangeHigh returns the canonical high bound of a range
func ToRangeHigh(v Value) (int, error) {
	if r, ok := v.(RangeValue); ok {
		return r.High, nil
	}
	return 0, mismatch(v, "range")
}

// ToInt truncates a number toward zero into the 32-bit integer domain
// used by the bitwise and modulo operators.
func ToInt(v Value) (int32, error) {
	n, err := ToNumber(v)
	if err != nil {
		return 0, err
	}
	return int32(n), nil
}
