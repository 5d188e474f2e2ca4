// README: Renderer maps a validated response into display-ready groupings.
package itinerary

import (
	"sort"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Display is the full display-ready view of an itinerary. Sections that
// would be empty (buckets, dining, tips) are omitted rather than rendered
// as empty placeholders.
type Display struct {
	Destination string       `json:"destination"`
	StartDate   string       `json:"startDate"`
	EndDate     string       `json:"endDate"`
	Travelers   int          `json:"travelers"`
	Days        []DaySection `json:"days"`
	Stay        StayCard     `json:"stay"`
	TotalCost   string       `json:"totalCost"`
	Tips        []string     `json:"tips,omitempty"`
}

// DaySection is one rendered day, ascending by day number.
type DaySection struct {
	DayNumber int              `json:"dayNumber"`
	Date      string           `json:"date"`
	Title     string           `json:"title"`
	Summary   string           `json:"summary"`
	Cost      string           `json:"cost"`
	Buckets   []ActivityGroup  `json:"buckets,omitempty"`
	Dining    []RestaurantCard `json:"dining,omitempty"`
}

// ActivityGroup is a non-empty time-of-day bucket.
type ActivityGroup struct {
	Label      string         `json:"label"`
	Activities []ActivityCard `json:"activities"`
}

// ActivityCard is a single activity formatted for display.
type ActivityCard struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Time        string `json:"time"`
	Duration    string `json:"duration"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	Cost        string `json:"cost"`
	Notes       string `json:"notes,omitempty"`
}

// RestaurantCard is a dining suggestion formatted for display.
type RestaurantCard struct {
	Name        string `json:"name"`
	Cuisine     string `json:"cuisine"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Rating      string `json:"rating"`
	PriceRange  string `json:"priceRange"`
	TimeSlot    string `json:"timeSlot"`
	Notes       string `json:"notes,omitempty"`
}

// StayCard is the accommodation formatted for display.
type StayCard struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Rating      string `json:"rating"`
	PriceRange  string `json:"priceRange"`
	NightlyRate string `json:"nightlyRate"`
	Amenities   string `json:"amenities"`
	CheckIn     string `json:"checkIn"`
	CheckOut    string `json:"checkOut"`
}

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
}

var displayPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders an amount with a currency symbol when the code is a
// common one, falling back to an ISO-code prefix. Amounts use en-US grouping.
func FormatCurrency(amount float64, code string) string {
	if sym, ok := currencySymbols[code]; ok {
		return displayPrinter.Sprintf("%s%.2f", sym, amount)
	}
	return displayPrinter.Sprintf("%s %.2f", code, amount)
}

// Render maps a validated response into display groupings. It is pure and
// total over well-formed input: costs and totals are taken from the response
// as-is, never recomputed, and days are emitted in ascending day order.
func Render(resp *ItineraryResponse) Display {
	days := make([]DayItinerary, len(resp.Days))
	copy(days, resp.Days)
	sort.SliceStable(days, func(i, j int) bool { return days[i].DayNumber < days[j].DayNumber })

	sections := make([]DaySection, 0, len(days))
	for _, day := range days {
		sections = append(sections, renderDay(day, resp.Currency))
	}

	var tips []string
	if len(resp.TravelTips) > 0 {
		tips = append(tips, resp.TravelTips...)
	}

	return Display{
		Destination: resp.Destination,
		StartDate:   resp.StartDate,
		EndDate:     resp.EndDate,
		Travelers:   resp.Travelers,
		Days:        sections,
		Stay:        renderStay(resp.Accommodation, resp.Currency),
		TotalCost:   FormatCurrency(resp.TotalEstimatedCost, resp.Currency),
		Tips:        tips,
	}
}

func renderDay(day DayItinerary, currency string) DaySection {
	section := DaySection{
		DayNumber: day.DayNumber,
		Date:      day.Date,
		Title:     day.DayTitle,
		Summary:   day.DaySummary,
		Cost:      FormatCurrency(day.EstimatedCost, currency),
	}

	buckets := []struct {
		label      string
		activities []Activity
	}{
		{"Morning", day.MorningActivities},
		{"Afternoon", day.AfternoonActivities},
		{"Evening", day.EveningActivities},
	}
	for _, b := range buckets {
		if len(b.activities) == 0 {
			continue
		}
		group := ActivityGroup{Label: b.label}
		for _, a := range b.activities {
			group.Activities = append(group.Activities, renderActivity(a, currency))
		}
		section.Buckets = append(section.Buckets, group)
	}

	for _, r := range day.Restaurants {
		section.Dining = append(section.Dining, RestaurantCard{
			Name:        r.Name,
			Cuisine:     r.Cuisine,
			Description: r.Description,
			Address:     r.Address,
			Rating:      formatRating(r.Rating),
			PriceRange:  r.PriceRange,
			TimeSlot:    r.TimeSlot,
			Notes:       r.Notes,
		})
	}

	return section
}

func renderActivity(a Activity, fallbackCurrency string) ActivityCard {
	currency := a.Currency
	if currency == "" {
		currency = fallbackCurrency
	}
	return ActivityCard{
		Name:        a.Name,
		Description: a.Description,
		Time:        a.Time,
		Duration:    a.Duration,
		Location:    a.Location,
		Category:    a.Category,
		Cost:        FormatCurrency(a.Cost, currency),
		Notes:       a.Notes,
	}
}

func renderStay(a Accommodation, fallbackCurrency string) StayCard {
	currency := a.Currency
	if currency == "" {
		currency = fallbackCurrency
	}
	return StayCard{
		Name:        a.Name,
		Type:        a.Type,
		Description: a.Description,
		Address:     a.Address,
		Rating:      formatRating(a.Rating),
		PriceRange:  a.PriceRange,
		NightlyRate: FormatCurrency(a.NightlyRate, currency),
		Amenities:   a.Amenities,
		CheckIn:     a.CheckIn,
		CheckOut:    a.CheckOut,
	}
}

func formatRating(r float64) string {
	return strconv.FormatFloat(r, 'f', 1, 64) + "/5"
}
