package models

import "testing"

func TestNormalizeDeviceName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain name", "Cobas t711", "Cobas t711"},
		{"leading and trailing space", "  Cobas t711  ", "Cobas t711"},
		{"internal runs collapse", "Cobas   t711", "Cobas t711"},
		{"tabs and newlines", "Cobas\t t711\n", "Cobas t711"},
		{"only whitespace", "   \t ", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeDeviceName(tt.input); got != tt.want {
				t.Errorf("NormalizeDeviceName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
