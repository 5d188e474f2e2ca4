// README: Itinerary request/response DTOs and response validation.
package itinerary

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the wire format for all calendar dates.
const DateLayout = "2006-01-02"

// Budget tiers accepted on a request.
const (
	BudgetLow  = "budget"
	BudgetMid  = "mid-range"
	BudgetHigh = "luxury"
)

// ItineraryRequest is the canonical, fully-defaulted request shape. It is the
// only shape sent to the generation provider.
type ItineraryRequest struct {
	Destination string   `json:"destination"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Travelers   int      `json:"travelers"`
	Budget      string   `json:"budget"`
	Interests   []string `json:"interests"`
	Transport   []string `json:"transport,omitempty"`
}

// DurationDays returns the inclusive trip length in days.
func (r ItineraryRequest) DurationDays() (int, error) {
	start, err := time.Parse(DateLayout, r.StartDate)
	if err != nil {
		return 0, fmt.Errorf("start date: %w", err)
	}
	end, err := time.Parse(DateLayout, r.EndDate)
	if err != nil {
		return 0, fmt.Errorf("end date: %w", err)
	}
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 1 {
		return 0, fmt.Errorf("end date %s before start date %s", r.EndDate, r.StartDate)
	}
	return days, nil
}

// Activity is a single scheduled item inside a time-of-day bucket.
type Activity struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Time        string  `json:"time"`
	Duration    string  `json:"duration"`
	Location    string  `json:"location"`
	Category    string  `json:"category"`
	Cost        float64 `json:"cost"`
	Currency    string  `json:"currency"`
	Icon        string  `json:"icon"`
	BookingURL  string  `json:"bookingUrl"`
	Notes       string  `json:"notes"`
}

// Restaurant is a dining suggestion attached to a day.
type Restaurant struct {
	Name        string  `json:"name"`
	Cuisine     string  `json:"cuisine"`
	Description string  `json:"description"`
	Address     string  `json:"address"`
	Phone       string  `json:"phone"`
	PriceRange  string  `json:"priceRange"`
	Rating      float64 `json:"rating"`
	TimeSlot    string  `json:"timeSlot"`
	BookingURL  string  `json:"bookingUrl"`
	Notes       string  `json:"notes"`
}

// Accommodation is the lodging suggestion for the whole trip.
type Accommodation struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Address     string  `json:"address"`
	Phone       string  `json:"phone"`
	Rating      float64 `json:"rating"`
	PriceRange  string  `json:"priceRange"`
	NightlyRate float64 `json:"nightlyRate"`
	Currency    string  `json:"currency"`
	Amenities   string  `json:"amenities"`
	BookingURL  string  `json:"bookingUrl"`
	CheckIn     string  `json:"checkIn"`
	CheckOut    string  `json:"checkOut"`
}

// DayItinerary is one day of the trip, pre-partitioned into morning,
// afternoon and evening buckets by the producer.
type DayItinerary struct {
	DayNumber           int          `json:"dayNumber"`
	Date                string       `json:"date"`
	DayTitle            string       `json:"dayTitle"`
	MorningActivities   []Activity   `json:"morningActivities"`
	AfternoonActivities []Activity   `json:"afternoonActivities"`
	EveningActivities   []Activity   `json:"eveningActivities"`
	Restaurants         []Restaurant `json:"restaurants"`
	DaySummary          string       `json:"daySummary"`
	EstimatedCost       float64      `json:"estimatedCost"`
}

// ItineraryResponse echoes the request fields and carries the generated plan.
type ItineraryResponse struct {
	Destination        string         `json:"destination"`
	StartDate          string         `json:"startDate"`
	EndDate            string         `json:"endDate"`
	Travelers          int            `json:"travelers"`
	Budget             string         `json:"budget"`
	Interests          []string       `json:"interests"`
	Days               []DayItinerary `json:"days"`
	Accommodation      Accommodation  `json:"accommodation"`
	TotalEstimatedCost float64        `json:"totalEstimatedCost"`
	Currency           string         `json:"currency"`
	TravelTips         []string       `json:"travelTips"`
}

// ErrMalformedResponse marks a generation response that violates the
// itinerary invariants. Callers classify it as a generation failure.
var ErrMalformedResponse = errors.New("malformed itinerary response")

// Validate checks the structural invariants of a generated itinerary:
// day count matches the trip duration, day numbers are 1-based and
// contiguous, dates line up with the start date, and monetary and rating
// fields are within range.
func (r *ItineraryResponse) Validate() error {
	start, err := time.Parse(DateLayout, r.StartDate)
	if err != nil {
		return fmt.Errorf("%w: start date: %v", ErrMalformedResponse, err)
	}
	duration, err := ItineraryRequest{StartDate: r.StartDate, EndDate: r.EndDate}.DurationDays()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(r.Days) != duration {
		return fmt.Errorf("%w: got %d days, want %d", ErrMalformedResponse, len(r.Days), duration)
	}
	if r.TotalEstimatedCost < 0 {
		return fmt.Errorf("%w: negative total cost", ErrMalformedResponse)
	}
	if r.Accommodation.NightlyRate < 0 {
		return fmt.Errorf("%w: negative nightly rate", ErrMalformedResponse)
	}
	if r.Accommodation.Rating < 0 || r.Accommodation.Rating > 5 {
		return fmt.Errorf("%w: accommodation rating %.1f out of range", ErrMalformedResponse, r.Accommodation.Rating)
	}

	for i, day := range r.Days {
		if day.DayNumber != i+1 {
			return fmt.Errorf("%w: day %d has dayNumber %d", ErrMalformedResponse, i+1, day.DayNumber)
		}
		wantDate := start.AddDate(0, 0, i).Format(DateLayout)
		if day.Date != wantDate {
			return fmt.Errorf("%w: day %d has date %s, want %s", ErrMalformedResponse, day.DayNumber, day.Date, wantDate)
		}
		if day.EstimatedCost < 0 {
			return fmt.Errorf("%w: day %d has negative cost", ErrMalformedResponse, day.DayNumber)
		}
		for _, bucket := range [][]Activity{day.MorningActivities, day.AfternoonActivities, day.EveningActivities} {
			for _, a := range bucket {
				if a.Cost < 0 {
					return fmt.Errorf("%w: activity %q has negative cost", ErrMalformedResponse, a.Name)
				}
			}
		}
		for _, rest := range day.Restaurants {
			if rest.Rating < 0 || rest.Rating > 5 {
				return fmt.Errorf("%w: restaurant %q rating %.1f out of range", ErrMalformedResponse, rest.Name, rest.Rating)
			}
		}
	}
	return nil
}
