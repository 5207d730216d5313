// Package search tests for literal match highlighting.
package search

import (
	"testing"
)

// TestMatchRanges verifies case-insensitive literal matching, including
// regex metacharacters in the search text.
func TestMatchRanges(t *testing.T) {
	tests := []struct {
		name string
		text string
		term string
		want []Range
	}{
		{"single match", "hello world", "world", []Range{{6, 11}}},
		{"case insensitive", "Hello HELLO hello", "hello", []Range{{0, 5}, {6, 11}, {12, 17}}},
		{"metacharacters literal", "read a.b*c now", "a.b*c", []Range{{5, 10}}},
		{"metacharacters no false hit", "read aXbYc now", "a.b*c", nil},
		{"empty term", "text", "", nil},
		{"whitespace term", "text", "   ", nil},
		{"no match", "text", "zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchRanges(tt.text, tt.term)
			if len(got) != len(tt.want) {
				t.Fatalf("MatchRanges(%q, %q) = %v, want %v", tt.text, tt.term, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("range %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// TestHighlight verifies marker insertion preserves the original casing.
func TestHighlight(t *testing.T) {
	got := Highlight("Go and GO and go", "go", "", "")
	want := "<mark>Go</mark> and <mark>GO</mark> and <mark>go</mark>"
	if got != want {
		t.Errorf("Highlight() = %q, want %q", got, want)
	}
}

// TestHighlight_CustomMarkers verifies caller-supplied markers.
func TestHighlight_CustomMarkers(t *testing.T) {
	got := Highlight("find me", "me", "[", "]")
	if got != "find [me]" {
		t.Errorf("Highlight() = %q, want %q", got, "find [me]")
	}
}

// TestHighlight_NoMatch verifies the text passes through untouched.
func TestHighlight_NoMatch(t *testing.T) {
	if got := Highlight("unchanged", "zzz", "", ""); got != "unchanged" {
		t.Errorf("Highlight() = %q, want unchanged", got)
	}
}
