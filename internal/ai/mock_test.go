package ai

import (
	"context"
	"testing"

	"tripmind/internal/modules/itinerary"
)

func testRequest() itinerary.ItineraryRequest {
	return itinerary.ItineraryRequest{
		Destination: "Rome",
		StartDate:   "2024-03-01",
		EndDate:     "2024-03-04",
		Travelers:   2,
		Budget:      itinerary.BudgetMid,
		Interests:   []string{"Culture", "Food"},
	}
}

func TestMockProviderShape(t *testing.T) {
	p := NewMockProvider()

	resp, err := p.GenerateItinerary(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("GenerateItinerary: %v", err)
	}

	if err := resp.Validate(); err != nil {
		t.Fatalf("generated itinerary should validate: %v", err)
	}
	if len(resp.Days) != 4 {
		t.Fatalf("got %d days, want 4", len(resp.Days))
	}
	if resp.Currency != "USD" {
		t.Errorf("currency = %q, want USD", resp.Currency)
	}
	if resp.Destination != "Rome" || resp.Travelers != 2 {
		t.Errorf("request fields not echoed: %+v", resp)
	}
	if len(resp.TravelTips) != 6 {
		t.Errorf("got %d travel tips, want 6", len(resp.TravelTips))
	}
}

func TestMockProviderDayContent(t *testing.T) {
	p := NewMockProvider()

	resp, err := p.GenerateItinerary(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("GenerateItinerary: %v", err)
	}

	first := resp.Days[0]
	if first.MorningActivities[0].Name != "Airport Transfer & Hotel Check-in" {
		t.Errorf("day 1 morning = %q, want airport transfer", first.MorningActivities[0].Name)
	}
	if first.DayTitle != "Arrival & First Impressions" {
		t.Errorf("day 1 title = %q", first.DayTitle)
	}

	second := resp.Days[1]
	if second.MorningActivities[0].Name != "Morning Coffee & Local Breakfast" {
		t.Errorf("day 2 morning = %q, want breakfast", second.MorningActivities[0].Name)
	}

	// Culture adds a museum visit, Food adds the afternoon food tour.
	if len(first.MorningActivities) != 2 || first.MorningActivities[1].Name != "Museum Visit" {
		t.Errorf("culture interest should add museum visit, got %+v", first.MorningActivities)
	}
	if len(first.AfternoonActivities) != 1 || first.AfternoonActivities[0].Name != "Food Tour" {
		t.Errorf("food interest should add food tour, got %+v", first.AfternoonActivities)
	}
	if first.EveningActivities[0].Name != "Sunset Viewpoint" {
		t.Errorf("evening should always start with sunset viewpoint")
	}
	if len(first.Restaurants) != 1 {
		t.Errorf("want one restaurant per day, got %d", len(first.Restaurants))
	}
}

func TestMockProviderCosts(t *testing.T) {
	p := NewMockProvider()

	resp, err := p.GenerateItinerary(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("GenerateItinerary: %v", err)
	}

	var daysTotal float64
	for _, day := range resp.Days {
		var cost float64
		for _, bucket := range [][]itinerary.Activity{day.MorningActivities, day.AfternoonActivities, day.EveningActivities} {
			for _, a := range bucket {
				cost += a.Cost
			}
		}
		if day.EstimatedCost != cost {
			t.Errorf("day %d cost = %.2f, want %.2f", day.DayNumber, day.EstimatedCost, cost)
		}
		daysTotal += cost
	}

	want := daysTotal + resp.Accommodation.NightlyRate*float64(len(resp.Days))
	if resp.TotalEstimatedCost != want {
		t.Errorf("total = %.2f, want %.2f", resp.TotalEstimatedCost, want)
	}
}

func TestMockProviderBudgetTiers(t *testing.T) {
	p := NewMockProvider()

	tests := []struct {
		budget string
		rate   float64
	}{
		{itinerary.BudgetLow, 80},
		{itinerary.BudgetMid, 150},
		{itinerary.BudgetHigh, 300},
		{"", 150},
	}
	for _, tt := range tests {
		req := testRequest()
		req.Budget = tt.budget
		resp, err := p.GenerateItinerary(context.Background(), req)
		if err != nil {
			t.Fatalf("GenerateItinerary(%q): %v", tt.budget, err)
		}
		if resp.Accommodation.NightlyRate != tt.rate {
			t.Errorf("budget %q: nightly rate = %.0f, want %.0f", tt.budget, resp.Accommodation.NightlyRate, tt.rate)
		}
	}
}
