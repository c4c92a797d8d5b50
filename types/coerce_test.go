package types

import (
	"errors"
	"strings"
	"testing"
)

// allValues covers every variant, plus nil
func allValues() []Value {
	return []Value{
		NewDouble(2.5),
		NewDouble(0),
		NewBool(true),
		NewBool(false),
		NewStr("S"),
		NewStrList([]string{"a", "b"}),
		RangeValue{Low: 0, High: 6},
		Invalid,
		nil,
	}
}

func TestCoercionsAreTotal(t *testing.T) {
	coercions := map[string]func(Value) error{
		"string":    func(v Value) error { _, err := ToString(v); return err },
		"number":    func(v Value) error { _, err := ToNumber(v); return err },
		"bool":      func(v Value) error { _, err := ToBool(v); return err },
		"rangeLow":  func(v Value) error { _, err := ToRangeLow(v); return err },
		"rangeHigh": func(v Value) error { _, err := ToRangeHigh(v); return err },
	}

	for name, coerce := range coercions {
		for _, v := range allValues() {
			err := coerce(v)
			if err != nil && !errors.Is(err, E_TYPE) {
				t.Errorf("%s(%v): expected nil or E_TYPE, got %v", name, v, err)
			}
		}
	}
}

func TestToNumber(t *testing.T) {
	tests := []struct {
		in   Value
		want float64
	}{
		{NewDouble(3.5), 3.5},
		{NewBool(true), 1},
		{NewBool(false), 0},
	}
	for _, tt := range tests {
		got, err := ToNumber(tt.in)
		if err != nil {
			t.Fatalf("ToNumber(%v) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ToNumber(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestToBool(t *testing.T) {
	tests := []struct {
		in   Value
		want bool
	}{
		{NewBool(true), true},
		{NewBool(false), false},
		{NewDouble(0), false},
		{NewDouble(-0.5), true},
	}
	for _, tt := range tests {
		got, err := ToBool(tt.in)
		if err != nil {
			t.Fatalf("ToBool(%v) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ToBool(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCoercionMessageNamesActualKind(t *testing.T) {
	_, err := ToNumber(NewStr("A"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "Not a number instead was string") {
		t.Errorf("unexpected message %q", err.Error())
	}

	_, err = ToString(NewStrList(nil))
	if err == nil || !strings.Contains(err.Error(), "list of string") {
		t.Errorf("unexpected error %v", err)
	}

	_, err = ToBool(Invalid)
	if err == nil || !strings.Contains(err.Error(), "invalid") {
		t.Errorf("unexpected error %v", err)
	}
}

func TestToStringRejectsNumbers(t *testing.T) {
	if _, err := ToString(NewDouble(1)); !errors.Is(err, E_TYPE) {
		t.Errorf("expected E_TYPE, got %v", err)
	}
	s, err := ToString(NewStr("holdfwd"))
	if err != nil || s != "holdfwd" {
		t.Errorf("ToString = %q, %v", s, err)
	}
}

func TestToInt(t *testing.T) {
	tests := []struct {
		in   float64
		want int32
	}{
		{3.9, 3},
		{-3.9, -3},
		{0, 0},
	}
	for _, tt := range tests {
		got, err := ToInt(NewDouble(tt.in))
		if err != nil {
			t.Fatalf("ToInt(%v) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ToInt(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
