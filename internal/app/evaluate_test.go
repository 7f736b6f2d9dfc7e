package app

import "testing"

func TestEvaluateSelection(t *testing.T) {
	tests := []struct {
		name     string
		correct  []string
		selected []string
		want     bool
	}{
		{"single match", []string{"a"}, []string{"a"}, true},
		{"single mismatch", []string{"a"}, []string{"b"}, false},
		{"order irrelevant", []string{"a", "c"}, []string{"c", "a"}, true},
		{"superset is wrong", []string{"a"}, []string{"a", "b"}, false},
		{"subset is wrong", []string{"a", "b"}, []string{"a"}, false},
		{"duplicates collapse", []string{"a", "b"}, []string{"a", "b", "a"}, true},
		{"both empty", nil, nil, true},
		{"empty selection", []string{"a"}, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := evaluateSelection(tt.correct, tt.selected); got != tt.want {
				t.Fatalf("evaluateSelection(%v, %v) = %v, want %v", tt.correct, tt.selected, got, tt.want)
			}
		})
	}
}
