package itinerary

import (
	"errors"
	"testing"
)

func validResponse() *ItineraryResponse {
	return &ItineraryResponse{
		Destination: "Rome",
		StartDate:   "2024-03-01",
		EndDate:     "2024-03-02",
		Travelers:   2,
		Budget:      BudgetMid,
		Days: []DayItinerary{
			{DayNumber: 1, Date: "2024-03-01", EstimatedCost: 75},
			{DayNumber: 2, Date: "2024-03-02", EstimatedCost: 40},
		},
		Accommodation:      Accommodation{Name: "Hotel", NightlyRate: 150, Rating: 4.5},
		TotalEstimatedCost: 415,
		Currency:           "USD",
	}
}

func TestResponseValidateOK(t *testing.T) {
	if err := validResponse().Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestResponseValidateFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ItineraryResponse)
	}{
		{"bad start date", func(r *ItineraryResponse) { r.StartDate = "not-a-date" }},
		{"day count mismatch", func(r *ItineraryResponse) { r.Days = r.Days[:1] }},
		{"day number gap", func(r *ItineraryResponse) { r.Days[1].DayNumber = 3 }},
		{"day date mismatch", func(r *ItineraryResponse) { r.Days[1].Date = "2024-03-05" }},
		{"negative total", func(r *ItineraryResponse) { r.TotalEstimatedCost = -1 }},
		{"negative day cost", func(r *ItineraryResponse) { r.Days[0].EstimatedCost = -5 }},
		{"negative nightly rate", func(r *ItineraryResponse) { r.Accommodation.NightlyRate = -10 }},
		{"rating out of range", func(r *ItineraryResponse) { r.Accommodation.Rating = 5.5 }},
		{"negative activity cost", func(r *ItineraryResponse) {
			r.Days[0].MorningActivities = []Activity{{Name: "Walk", Cost: -1}}
		}},
		{"restaurant rating out of range", func(r *ItineraryResponse) {
			r.Days[0].Restaurants = []Restaurant{{Name: "Trattoria", Rating: 6}}
		}},
		{"end before start", func(r *ItineraryResponse) { r.EndDate = "2024-02-01" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := validResponse()
			tt.mutate(resp)
			if err := resp.Validate(); !errors.Is(err, ErrMalformedResponse) {
				t.Errorf("got %v, want ErrMalformedResponse", err)
			}
		})
	}
}

func TestDurationDays(t *testing.T) {
	tests := []struct {
		start, end string
		want       int
		wantErr    bool
	}{
		{"2024-03-01", "2024-03-01", 1, false},
		{"2024-03-01", "2024-03-07", 7, false},
		{"2024-03-07", "2024-03-01", 0, true},
		{"bad", "2024-03-01", 0, true},
	}
	for _, tt := range tests {
		got, err := ItineraryRequest{StartDate: tt.start, EndDate: tt.end}.DurationDays()
		if (err != nil) != tt.wantErr {
			t.Errorf("DurationDays(%s, %s) error = %v", tt.start, tt.end, err)
			continue
		}
		if got != tt.want {
			t.Errorf("DurationDays(%s, %s) = %d, want %d", tt.start, tt.end, got, tt.want)
		}
	}
}
