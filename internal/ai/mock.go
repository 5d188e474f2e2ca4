package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tripmind/internal/modules/itinerary"
)

// MockProvider generates a deterministic itinerary without any network call.
// It is selectable via config for local development and doubles as the test
// generator.
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

var dayTitles = []string{
	"Arrival & First Impressions",
	"Cultural Exploration",
	"Local Cuisine & Markets",
	"Historic Sites & Landmarks",
	"Nature & Outdoor Adventures",
	"Art & Museums",
	"Shopping & Local Life",
	"Hidden Gems & Local Secrets",
}

var travelTips = []string{
	"Book accommodations in advance, especially during peak season",
	"Download offline maps and translation apps",
	"Carry local currency and a backup payment method",
	"Check visa requirements and travel documents",
	"Pack according to the local climate and culture",
	"Keep emergency contacts and embassy information handy",
}

// GenerateItinerary builds the full mock plan: interest-driven activities in
// three daily buckets, one restaurant per day, budget-tiered accommodation
// and a trip total.
func (p *MockProvider) GenerateItinerary(_ context.Context, req itinerary.ItineraryRequest) (*itinerary.ItineraryResponse, error) {
	duration, err := req.DurationDays()
	if err != nil {
		return nil, err
	}
	start, err := time.Parse(itinerary.DateLayout, req.StartDate)
	if err != nil {
		return nil, err
	}

	accommodation := mockAccommodation(req)

	days := make([]itinerary.DayItinerary, 0, duration)
	total := 0.0
	for i := 1; i <= duration; i++ {
		day := mockDay(req, i, start.AddDate(0, 0, i-1))
		total += day.EstimatedCost
		days = append(days, day)
	}
	total += accommodation.NightlyRate * float64(duration)

	return &itinerary.ItineraryResponse{
		Destination:        req.Destination,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		Travelers:          req.Travelers,
		Budget:             req.Budget,
		Interests:          req.Interests,
		Days:               days,
		Accommodation:      accommodation,
		TotalEstimatedCost: total,
		Currency:           "USD",
		TravelTips:         append([]string(nil), travelTips...),
	}, nil
}

func mockDay(req itinerary.ItineraryRequest, dayNumber int, date time.Time) itinerary.DayItinerary {
	morning := mockMorning(req, dayNumber)
	afternoon := mockAfternoon(req)
	evening := mockEvening(req)

	cost := 0.0
	for _, bucket := range [][]itinerary.Activity{morning, afternoon, evening} {
		for _, a := range bucket {
			cost += a.Cost
		}
	}

	return itinerary.DayItinerary{
		DayNumber:           dayNumber,
		Date:                date.Format(itinerary.DateLayout),
		DayTitle:            mockDayTitle(dayNumber),
		MorningActivities:   morning,
		AfternoonActivities: afternoon,
		EveningActivities:   evening,
		Restaurants:         mockRestaurants(req),
		DaySummary: fmt.Sprintf(
			"Day %d in %s offers a perfect blend of activities. Start with %d morning activities, enjoy %d afternoon experiences, and end with %d evening activities for a memorable day.",
			dayNumber, req.Destination, len(morning), len(afternoon), len(evening)),
		EstimatedCost: cost,
	}
}

func mockDayTitle(dayNumber int) string {
	if dayNumber <= len(dayTitles) {
		return dayTitles[dayNumber-1]
	}
	return fmt.Sprintf("Day %d Adventures", dayNumber)
}

func mockMorning(req itinerary.ItineraryRequest, dayNumber int) []itinerary.Activity {
	var activities []itinerary.Activity
	if dayNumber == 1 {
		activities = append(activities, itinerary.Activity{
			Name:        "Airport Transfer & Hotel Check-in",
			Description: "Transfer from airport to accommodation and check-in process",
			Time:        "09:00",
			Duration:    "2 hours",
			Location:    "Airport to Hotel",
			Category:    "Transportation",
			Cost:        50,
			Currency:    "USD",
			Icon:        "🚗",
			Notes:       "Allow extra time for customs and immigration",
		})
	} else {
		activities = append(activities, itinerary.Activity{
			Name:        "Morning Coffee & Local Breakfast",
			Description: "Start your day with authentic local breakfast and coffee",
			Time:        "08:00",
			Duration:    "1.5 hours",
			Location:    "Local Café",
			Category:    "Food & Drink",
			Cost:        15,
			Currency:    "USD",
			Icon:        "☕",
			Notes:       "Try local specialties",
		})
	}
	if hasInterest(req, "Culture") {
		activities = append(activities, itinerary.Activity{
			Name:        "Museum Visit",
			Description: "Explore local history and culture at a renowned museum",
			Time:        "10:00",
			Duration:    "2 hours",
			Location:    "City Museum",
			Category:    "Culture",
			Cost:        25,
			Currency:    "USD",
			Icon:        "🏛️",
			Notes:       "Book tickets in advance for popular exhibitions",
		})
	}
	return activities
}

func mockAfternoon(req itinerary.ItineraryRequest) []itinerary.Activity {
	var activities []itinerary.Activity
	if hasInterest(req, "Food") {
		activities = append(activities, itinerary.Activity{
			Name:        "Food Tour",
			Description: "Guided tour of local food markets and street food",
			Time:        "14:00",
			Duration:    "3 hours",
			Location:    "Local Markets",
			Category:    "Food & Drink",
			Cost:        45,
			Currency:    "USD",
			Icon:        "🍜",
			Notes:       "Come hungry and try everything!",
		})
	}
	if hasInterest(req, "Adventure") {
		activities = append(activities, itinerary.Activity{
			Name:        "Adventure Activity",
			Description: "Exciting outdoor adventure based on local geography",
			Time:        "16:00",
			Duration:    "2 hours",
			Location:    "Adventure Location",
			Category:    "Adventure",
			Cost:        80,
			Currency:    "USD",
			Icon:        "🏔️",
			Notes:       "Wear appropriate clothing and bring water",
		})
	}
	return activities
}

func mockEvening(req itinerary.ItineraryRequest) []itinerary.Activity {
	activities := []itinerary.Activity{{
		Name:        "Sunset Viewpoint",
		Description: "Watch the sunset from a beautiful local viewpoint",
		Time:        "18:30",
		Duration:    "1 hour",
		Location:    "Scenic Viewpoint",
		Category:    "Sightseeing",
		Cost:        0,
		Currency:    "USD",
		Icon:        "🌅",
		Notes:       "Bring a camera for amazing photos",
	}}
	if hasInterest(req, "Nightlife") {
		activities = append(activities, itinerary.Activity{
			Name:        "Local Bar & Nightlife",
			Description: "Experience the local nightlife scene",
			Time:        "20:00",
			Duration:    "3 hours",
			Location:    "Downtown Area",
			Category:    "Nightlife",
			Cost:        35,
			Currency:    "USD",
			Icon:        "🍻",
			Notes:       "Check dress codes and age requirements",
		})
	}
	return activities
}

func mockRestaurants(req itinerary.ItineraryRequest) []itinerary.Restaurant {
	return []itinerary.Restaurant{{
		Name:        "Local Restaurant",
		Cuisine:     "Traditional Local Cuisine",
		Description: "Authentic local dishes with traditional preparation methods",
		Address:     "123 Main Street, " + req.Destination,
		Phone:       "+1-234-567-8900",
		PriceRange:  "$$",
		Rating:      4.5,
		TimeSlot:    "Lunch",
		BookingURL:  "https://example.com/booking",
		Notes:       "Reservations recommended for dinner",
	}}
}

func mockAccommodation(req itinerary.ItineraryRequest) itinerary.Accommodation {
	rate := 150.0
	priceRange := "$$"
	switch req.Budget {
	case itinerary.BudgetLow:
		rate = 80.0
		priceRange = "$"
	case itinerary.BudgetHigh:
		rate = 300.0
		priceRange = "$$$"
	}
	return itinerary.Accommodation{
		Name:        "Boutique Hotel " + req.Destination,
		Type:        "Hotel",
		Description: "Beautiful boutique hotel in the heart of " + req.Destination,
		Address:     "456 Hotel Street, " + req.Destination,
		Phone:       "+1-234-567-8901",
		Rating:      4.8,
		PriceRange:  priceRange,
		NightlyRate: rate,
		Currency:    "USD",
		Amenities:   "WiFi, Pool, Gym, Restaurant, Concierge",
		BookingURL:  "https://example.com/hotel-booking",
		CheckIn:     "15:00",
		CheckOut:    "11:00",
	}
}

func hasInterest(req itinerary.ItineraryRequest, tag string) bool {
	for _, i := range req.Interests {
		if strings.EqualFold(i, tag) {
			return true
		}
	}
	return false
}
