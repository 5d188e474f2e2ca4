// README: Request builder merges quick/detailed form input into a canonical request.
package itinerary

import (
	"errors"
	"time"

	"tripmind/internal/modules/prompt"
)

// Planning modes.
type Mode string

const (
	ModeQuick    Mode = "quick"
	ModeDetailed Mode = "detailed"
)

// Validation errors surfaced before any generation call is attempted.
var (
	ErrMissingDates = errors.New("start and end dates are required for detailed planning")
	ErrInvalidDates = errors.New("invalid start or end date")
)

// ExamplePrompts are the suggested quick-planning prompts. The first one is
// the fallback when the quick prompt is left blank.
var ExamplePrompts = []string{
	"1 week in Rome for food and history",
	"4 days in Tokyo for culture and sushi",
	"5 days in Barcelona with art and beaches",
	"Weekend in Paris with museums and cafés",
}

// TransportPrefs are the transport checkboxes from the detailed form.
type TransportPrefs struct {
	Flights bool `json:"flights"`
	Trains  bool `json:"trains"`
	Boat    bool `json:"boat"`
}

// PlanForm is the raw user input for a planning action, before defaulting.
type PlanForm struct {
	Mode      Mode           `json:"mode"`
	Prompt    string         `json:"prompt"`
	StartDate string         `json:"startDate"`
	EndDate   string         `json:"endDate"`
	Travelers int            `json:"travelers"`
	Budget    string         `json:"budget"`
	Interests []string       `json:"interests"`
	Transport TransportPrefs `json:"transport"`
	UserID    string         `json:"userId"`
}

const (
	minTravelers = 1
	maxTravelers = 20
)

// BuildRequest merges form input into a canonical ItineraryRequest.
// Quick mode derives destination, duration and interests from the prompt
// (or the first example prompt when blank). Detailed mode takes the fields
// as entered and fails only when a date is missing or unparseable.
func BuildRequest(form PlanForm, now time.Time) (ItineraryRequest, error) {
	if form.Mode == ModeDetailed {
		return buildDetailed(form)
	}
	return buildQuick(form, now), nil
}

func buildQuick(form PlanForm, now time.Time) ItineraryRequest {
	base := form.Prompt
	if base == "" {
		base = ExamplePrompts[0]
	}
	parsed := prompt.Interpret(base)

	start := now
	end := start.AddDate(0, 0, parsed.Days-1)

	return ItineraryRequest{
		Destination: parsed.Destination,
		StartDate:   start.Format(DateLayout),
		EndDate:     end.Format(DateLayout),
		Travelers:   2,
		Budget:      BudgetMid,
		Interests:   prompt.ClassifyInterests(base),
		Transport:   form.Transport.selected(),
	}
}

func buildDetailed(form PlanForm) (ItineraryRequest, error) {
	if form.StartDate == "" || form.EndDate == "" {
		return ItineraryRequest{}, ErrMissingDates
	}
	start, err := time.Parse(DateLayout, form.StartDate)
	if err != nil {
		return ItineraryRequest{}, ErrInvalidDates
	}
	end, err := time.Parse(DateLayout, form.EndDate)
	if err != nil {
		return ItineraryRequest{}, ErrInvalidDates
	}
	if end.Before(start) {
		return ItineraryRequest{}, ErrInvalidDates
	}

	destination := form.Prompt
	if destination == "" {
		destination = prompt.DefaultDestination
	}

	travelers := form.Travelers
	if travelers < minTravelers {
		travelers = minTravelers
	}
	if travelers > maxTravelers {
		travelers = maxTravelers
	}

	budget := form.Budget
	switch budget {
	case BudgetLow, BudgetMid, BudgetHigh:
	default:
		budget = BudgetMid
	}

	interests := form.Interests
	if len(interests) == 0 {
		interests = []string{"Culture", "Food"}
	}

	return ItineraryRequest{
		Destination: destination,
		StartDate:   start.Format(DateLayout),
		EndDate:     end.Format(DateLayout),
		Travelers:   travelers,
		Budget:      budget,
		Interests:   interests,
		Transport:   form.Transport.selected(),
	}, nil
}

func (t TransportPrefs) selected() []string {
	var out []string
	if t.Flights {
		out = append(out, "flights")
	}
	if t.Trains {
		out = append(out, "trains")
	}
	if t.Boat {
		out = append(out, "boat")
	}
	return out
}
