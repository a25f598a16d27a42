package match

import (
	"testing"
)

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"SomeKey", "somekey"},
		{"some_key", "somekey"},
		{"some-key", "somekey"},
		{"someKey", "somekey"},
		{"SOME_KEY", "somekey"},
		{"next node", "nextnode"},
		{"booleanField", "booleanfield"},
		{"ÄpfelZahl", "äpfelzahl"},

		// Edge cases
		{"", ""},
		{"_", ""},
		{"A", "a"},
		{"ID", "id"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := NormalizeIdent(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeIdent(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestSameIdent(t *testing.T) {
	if !SameIdent("some_key", "SomeKey") {
		t.Error("some_key and SomeKey must be the same identifier")
	}

	if SameIdent("someKey", "someKeys") {
		t.Error("someKey and someKeys must differ")
	}
}
