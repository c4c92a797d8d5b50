package types

import "testing"

func TestKindNames(t *testing.T) {
	tests := []struct {
		kind Kind
		val  int
		name string
	}{
		{KIND_INVALID, 0, "invalid"},
		{KIND_DOUBLE, 1, "double"},
		{KIND_BOOL, 2, "bool"},
		{KIND_STRING, 3, "string"},
		{KIND_STRING_LIST, 4, "list of string"},
		{KIND_RANGE, 5, "range"},
		{Kind(42), 42, "unknown"},
	}

	for _, tt := range tests {
		if int(tt.kind) != tt.val {
			t.Errorf("Kind %s should be %d, got %d", tt.name, tt.val, int(tt.kind))
		}
		if tt.kind.String() != tt.name {
			t.Errorf("Kind %d should stringify to %s, got %s", tt.val, tt.name, tt.kind.String())
		}
	}
}
