package password

import (
	"strings"
	"testing"
)

func TestClassAlphabets(t *testing.T) {
	tests := []struct {
		class CharacterClass
		name  string
		size  int
	}{
		{Lowercase, "lowercase", 26},
		{Uppercase, "uppercase", 26},
		{Digit, "digits", 10},
		{Symbol, "symbols", 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.class.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := len(tt.class.Alphabet()); got != tt.size {
				t.Errorf("Alphabet() has %d characters, want %d", got, tt.size)
			}
		})
	}
}

func TestClassesPoolOrder(t *testing.T) {
	want := []CharacterClass{Lowercase, Uppercase, Digit, Symbol}
	got := Classes()

	if len(got) != len(want) {
		t.Fatalf("Classes() returned %d classes, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Classes()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestPoolChars(t *testing.T) {
	tests := []struct {
		class   CharacterClass
		similar string
	}{
		{Lowercase, "lo"},
		{Uppercase, "IO"},
		{Digit, "01"},
		{Symbol, ""},
	}

	for _, tt := range tests {
		t.Run(tt.class.String(), func(t *testing.T) {
			if got := tt.class.poolChars(false); got != tt.class.Alphabet() {
				t.Errorf("poolChars(false) = %q, want the full alphabet", got)
			}

			filtered := tt.class.poolChars(true)
			if tt.similar != "" && strings.ContainsAny(filtered, tt.similar) {
				t.Errorf("poolChars(true) = %q still contains one of %q", filtered, tt.similar)
			}
			if want := len(tt.class.Alphabet()) - len(tt.similar); len(filtered) != want {
				t.Errorf("poolChars(true) has %d characters, want %d", len(filtered), want)
			}
		})
	}
}
