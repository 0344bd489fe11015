package spec

import (
	"reflect"
	"testing"
)

func TestToStringList(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  []string
	}{
		{
			name:  "nil yields empty list",
			value: nil,
			want:  []string{},
		},
		{
			name:  "list elements stringified and trimmed in order",
			value: []any{"  a  ", 1, true, "b"},
			want:  []string{"a", "1", "true", "b"},
		},
		{
			name:  "nil elements dropped",
			value: []any{"a", nil, "b"},
			want:  []string{"a", "b"},
		},
		{
			name:  "lone string wrapped",
			value: "  single  ",
			want:  []string{"single"},
		},
		{
			name:  "blank string yields empty list",
			value: "   ",
			want:  []string{},
		},
		{
			name:  "scalar wrapped without trim",
			value: 42,
			want:  []string{"42"},
		},
		{
			name:  "float scalar",
			value: 3.5,
			want:  []string{"3.5"},
		},
		{
			name:  "empty list stays empty",
			value: []any{},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToStringList(tt.value)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ToStringList(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestToStringListIdempotent(t *testing.T) {
	once := ToStringList([]any{"  a ", 2, nil, "c"})

	asAny := make([]any, len(once))
	for i, s := range once {
		asAny[i] = s
	}
	twice := ToStringList(asAny)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second coercion changed the list: %v vs %v", once, twice)
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{nil, ""},
		{"text", "text"},
		{true, "true"},
		{false, "false"},
		{7, "7"},
		{int64(9), "9"},
		{2.5, "2.5"},
		{1.0, "1.0"},
		{100.0, "100.0"},
		{-3.0, "-3.0"},
	}

	for _, tt := range tests {
		if got := Stringify(tt.value); got != tt.want {
			t.Errorf("Stringify(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}
