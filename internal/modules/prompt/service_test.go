// README: Interpreter tests pin duration, destination and interest derivation.
package prompt

import (
	"reflect"
	"testing"
)

func TestInterpretDuration(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"one week literal", "1 week in Rome for food and history", 7},
		{"one week spelled", "one week in Lisbon", 7},
		{"one week mixed case", "ONE WEEK in Oslo", 7},
		{"n days", "3 days in Tokyo for sushi", 3},
		{"single day raised to min", "1 day in Vienna", 2},
		{"long trip capped", "21 days in Patagonia", 14},
		{"overflowing count capped", "99999999999999999999 days in Patagonia", 14},
		{"no duration defaults", "Weekend in Paris with museums", 4},
		{"empty input defaults", "", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Interpret(tt.text)
			if got.Days != tt.want {
				t.Errorf("Interpret(%q).Days = %d, want %d", tt.text, got.Days, tt.want)
			}
		})
	}
}

func TestInterpretDestination(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"stops before for", "1 week in Rome for food and history", "Rome"},
		{"runs to end of text", "one week in Lisbon", "Lisbon"},
		{"multi word destination", "5 days in Fort Worth", "Fort Worth"},
		{"no pattern falls back", "just a getaway", "Rome"},
		{"empty input falls back", "", "Rome"},
		// Multiple "in" occurrences: first regex match wins.
		{"first in wins", "stay in Bali for a bit or in Goa", "Bali"},
		// Destination itself starts with "For": " for" only cuts on a
		// whitespace boundary, so the full name survives.
		{"for inside name kept", "4 days in Formosa for hiking", "Formosa"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Interpret(tt.text)
			if got.Destination != tt.want {
				t.Errorf("Interpret(%q).Destination = %q, want %q", tt.text, got.Destination, tt.want)
			}
		})
	}
}

// TestInterpretDestinationFallbackQuirks pins the current behaviour of the
// token-after-in fallback so any future change to the heuristic is deliberate.
func TestInterpretDestinationFallbackQuirks(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		// Non-ASCII later in the text defeats the regex rule; the
		// fallback takes the first token after " in ".
		{"accented text uses fallback", "Weekend in Paris with museums and cafés", "Paris"},
		// Trailing punctuation is not stripped by the fallback.
		{"trailing punctuation kept", "4 days in Paris.", "Paris."},
		// With no " for" cut point the regex rule captures the whole tail.
		{"tail swallowed without for", "5 days in Barcelona with art and beaches", "Barcelona with art and beaches"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Interpret(tt.text)
			if got.Destination != tt.want {
				t.Errorf("Interpret(%q).Destination = %q, want %q", tt.text, got.Destination, tt.want)
			}
		})
	}
}

func TestClassifyInterests(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"food and culture", "Weekend in Paris with museums and cafés", []string{"Food", "Culture"}},
		{"food only", "beach days and wine tasting", []string{"Food"}},
		{"culture only", "a history tour of the old town", []string{"Culture"}},
		{"case insensitive", "ALL THE SUSHI", []string{"Food"}},
		{"no keywords default", "just relax somewhere quiet", []string{"Culture"}},
		{"empty input default", "", []string{"Culture"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyInterests(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ClassifyInterests(%q) = %v, want %v", tt.text, got, tt.want)
			}
			if len(got) == 0 {
				t.Errorf("interest set must never be empty")
			}
		})
	}
}
