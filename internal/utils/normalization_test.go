package utils

import "testing"

func TestNormalizeContent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello world"},
		{"  HELLO   world  ", "hello world"},
		{"one\ttwo\nthree", "one two three"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := NormalizeContent(tt.in); got != tt.want {
			t.Errorf("NormalizeContent(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCollapseSpaces(t *testing.T) {
	if got := CollapseSpaces("  a   B  "); got != "a B" {
		t.Errorf("CollapseSpaces() = %q, want %q", got, "a B")
	}
}
