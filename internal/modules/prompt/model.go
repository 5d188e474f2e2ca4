// README: Parsed trip values derived from a free-text prompt.
package prompt

// ParsedTrip is the result of interpreting a free-text trip prompt.
// Destination is never empty and Days is always within [MinDays, MaxDays].
type ParsedTrip struct {
	Destination string
	Days        int
}

const (
	// MinDays and MaxDays bound the derived trip length.
	MinDays = 2
	MaxDays = 14

	// DefaultDays applies when the prompt mentions no duration.
	DefaultDays = 4

	// DefaultDestination applies when no destination can be derived.
	DefaultDestination = "Rome"
)
