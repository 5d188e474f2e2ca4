package itinerary

import (
	"testing"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount float64
		code   string
		want   string
	}{
		{1234.5, "USD", "$1,234.50"},
		{99, "EUR", "€99.00"},
		{12, "GBP", "£12.00"},
		{2500, "JPY", "¥2,500.00"},
		{99, "AUD", "AUD 99.00"},
		{0, "USD", "$0.00"},
	}
	for _, tt := range tests {
		if got := FormatCurrency(tt.amount, tt.code); got != tt.want {
			t.Errorf("FormatCurrency(%v, %s) = %q, want %q", tt.amount, tt.code, got, tt.want)
		}
	}
}

func TestRenderSortsDaysAscending(t *testing.T) {
	resp := &ItineraryResponse{
		Destination: "Rome",
		StartDate:   "2024-03-01",
		EndDate:     "2024-03-03",
		Currency:    "USD",
		Days: []DayItinerary{
			{DayNumber: 3, Date: "2024-03-03"},
			{DayNumber: 1, Date: "2024-03-01"},
			{DayNumber: 2, Date: "2024-03-02"},
		},
	}

	display := Render(resp)
	if len(display.Days) != 3 {
		t.Fatalf("got %d days", len(display.Days))
	}
	for i, day := range display.Days {
		if day.DayNumber != i+1 {
			t.Errorf("position %d has dayNumber %d", i, day.DayNumber)
		}
	}
	// Input order is untouched.
	if resp.Days[0].DayNumber != 3 {
		t.Errorf("Render mutated the response day order")
	}
}

func TestRenderOmitsEmptySections(t *testing.T) {
	resp := &ItineraryResponse{
		Destination: "Rome",
		StartDate:   "2024-03-01",
		EndDate:     "2024-03-01",
		Currency:    "USD",
		Days: []DayItinerary{{
			DayNumber:         1,
			Date:              "2024-03-01",
			MorningActivities: []Activity{{Name: "Walk", Cost: 0}},
		}},
	}

	display := Render(resp)
	day := display.Days[0]
	if len(day.Buckets) != 1 || day.Buckets[0].Label != "Morning" {
		t.Fatalf("buckets = %+v, want only Morning", day.Buckets)
	}
	if day.Dining != nil {
		t.Errorf("dining should be omitted when empty")
	}
	if display.Tips != nil {
		t.Errorf("tips should be omitted when empty")
	}
}

func TestRenderFullyEmptyDay(t *testing.T) {
	resp := &ItineraryResponse{
		Destination: "Rome",
		StartDate:   "2024-03-01",
		EndDate:     "2024-03-01",
		Currency:    "USD",
		Days: []DayItinerary{{
			DayNumber:  1,
			Date:       "2024-03-01",
			DayTitle:   "Rest Day",
			DaySummary: "A free day with nothing scheduled.",
		}},
	}

	display := Render(resp)
	day := display.Days[0]
	if day.Buckets != nil {
		t.Errorf("buckets = %+v, want all omitted for an empty day", day.Buckets)
	}
	if day.Dining != nil {
		t.Errorf("dining = %+v, want omitted for an empty day", day.Dining)
	}
	if day.Title != "Rest Day" || day.Summary == "" {
		t.Errorf("title and summary must still render: %+v", day)
	}
}

func TestRenderCurrencyFallback(t *testing.T) {
	resp := &ItineraryResponse{
		Destination: "Paris",
		StartDate:   "2024-03-01",
		EndDate:     "2024-03-01",
		Currency:    "EUR",
		Days: []DayItinerary{{
			DayNumber:         1,
			Date:              "2024-03-01",
			EstimatedCost:     30,
			MorningActivities: []Activity{{Name: "Louvre", Cost: 30}},
		}},
		Accommodation:      Accommodation{Name: "Hotel", NightlyRate: 120, Rating: 4},
		TotalEstimatedCost: 150,
		TravelTips:         []string{"Carry cash"},
	}

	display := Render(resp)
	if got := display.Days[0].Buckets[0].Activities[0].Cost; got != "€30.00" {
		t.Errorf("activity cost = %q, want response currency fallback", got)
	}
	if display.Stay.NightlyRate != "€120.00" {
		t.Errorf("nightly rate = %q", display.Stay.NightlyRate)
	}
	if display.TotalCost != "€150.00" {
		t.Errorf("total = %q", display.TotalCost)
	}
	if display.Stay.Rating != "4.0/5" {
		t.Errorf("rating = %q, want 4.0/5", display.Stay.Rating)
	}
	if len(display.Tips) != 1 {
		t.Errorf("tips = %v", display.Tips)
	}
}
