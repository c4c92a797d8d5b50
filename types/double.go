package types

import (
	"math"
	"strconv"
)

// DoubleValue represents every number in the trigger language
type DoubleValue struct {
	Val float64
}

// NewDouble creates a new DoubleValue
func NewDouble(val float64) DoubleValue {
	return DoubleValue{Val: val}
}

// NewInt creates a DoubleValue from an integer quantity (state numbers, timers)
func NewInt(val int) DoubleValue {
	return DoubleValue{Val: float64(val)}
}

// Kind returns KIND_DOUBLE
func (d DoubleValue) Kind() Kind {
	return KIND_DOUBLE
}

// String returns the shortest representation that round-trips
func (d DoubleValue) String() string {
	if math.IsNaN(d.Val) {
		return "NaN"
	}
	if math.IsInf(d.Val, 1) {
		return "Inf"
	}
	if math.IsInf(d.Val, -1) {
		return "-Inf"
	}
	return strconv.FormatFloat(d.Val, 'g', -1, 64)
}

func (DoubleValue) runtimeValue() {}
