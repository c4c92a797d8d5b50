package types

import (
	"math"
	"testing"
)

func TestValueStrings(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{NewDouble(3), "3"},
		{NewDouble(3.5), "3.5"},
		{NewDouble(math.Inf(1)), "Inf"},
		{NewDouble(math.NaN()), "NaN"},
		{NewBool(true), "true"},
		{NewStr("holdfwd"), `"holdfwd"`},
		{NewStrList([]string{"a", "b"}), `{"a", "b"}`},
		{RangeValue{Low: 0, High: 6}, "(0, 6)"},
		{Invalid, "<invalid>"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestStrListCopiesInput(t *testing.T) {
	in := []string{"a", "b"}
	list := NewStrList(in)
	in[0] = "z"
	if !list.Contains("a") || list.Contains("z") {
		t.Error("NewStrList should copy its input")
	}
	out := list.Elements()
	out[1] = "z"
	if !list.Contains("b") {
		t.Error("Elements should return a copy")
	}
}

func TestKindOfNil(t *testing.T) {
	if KindOf(nil) != KIND_INVALID {
		t.Error("nil should report KIND_INVALID")
	}
	if KindOf(NewInt(4)) != KIND_DOUBLE {
		t.Error("NewInt should produce a double")
	}
}
