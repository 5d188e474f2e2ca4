package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"tripmind/internal/modules/itinerary"
)

// GeminiProvider generates itineraries using Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Gemini 2.0 Flash for low latency and cost efficiency.
	model := client.GenerativeModel("gemini-2.0-flash")

	// Force JSON response for structured parsing.
	model.ResponseMIMEType = "application/json"

	// Creative but structured output.
	model.SetTemperature(0.4)

	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// GenerateItinerary asks the model for a complete day-by-day plan and parses
// the JSON payload into the itinerary response shape. Request fields are
// echoed onto the response so downstream validation always sees them.
func (p *GeminiProvider) GenerateItinerary(ctx context.Context, req itinerary.ItineraryRequest) (*itinerary.ItineraryResponse, error) {
	duration, err := req.DurationDays()
	if err != nil {
		return nil, err
	}

	prompt := buildItineraryPrompt(req, duration)

	resp, err := p.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no response candidates from Gemini")
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}

	// Clean up potential markdown formatting (though json mode should handle this, safety first).
	cleanJSON := cleanJSONString(responseText.String())

	var result itinerary.ItineraryResponse
	if err := json.Unmarshal([]byte(cleanJSON), &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w. Raw: %s", err, cleanJSON)
	}

	result.Destination = req.Destination
	result.StartDate = req.StartDate
	result.EndDate = req.EndDate
	result.Travelers = req.Travelers
	result.Budget = req.Budget
	result.Interests = req.Interests
	if result.Currency == "" {
		result.Currency = "USD"
	}

	return &result, nil
}

// buildItineraryPrompt constructs the instructions for the AI.
func buildItineraryPrompt(req itinerary.ItineraryRequest, duration int) string {
	interests := strings.Join(req.Interests, ", ")
	if interests == "" {
		interests = "general sightseeing"
	}

	transport := "no preference"
	if len(req.Transport) > 0 {
		transport = strings.Join(req.Transport, ", ")
	}

	return fmt.Sprintf(`Role: You are an expert travel planner creating a detailed trip itinerary.

Trip parameters:
- Destination: %s
- Start date: %s
- End date: %s
- Duration: %d days
- Travelers: %d
- Budget tier: %s
- Interests: %s
- Preferred transport: %s

RULES:
1. Produce EXACTLY %d entries in "days", one per calendar day from the start date.
2. "dayNumber" starts at 1 and increases by 1 per day. "date" uses YYYY-MM-DD and matches the calendar day.
3. Split each day into morningActivities, afternoonActivities and eveningActivities. Every activity needs a realistic time (HH:MM, 24h), duration, location, cost as a number and a single emoji icon.
4. Suggest at least one restaurant per day with cuisine, address, priceRange ($ to $$$), rating (0-5) and timeSlot.
5. Recommend ONE accommodation for the whole stay matching the budget tier, with nightlyRate as a number, checkIn and checkOut times.
6. "estimatedCost" per day is the sum of that day's activity costs. "totalEstimatedCost" covers all days plus the accommodation for the full stay.
7. All monetary amounts use one currency and "currency" holds its ISO 4217 code.
8. "travelTips" holds 4 to 6 short practical tips for this destination.
9. Respond with JSON only. No markdown, no commentary.

Output JSON Schema:
{
  "destination": "string",
  "startDate": "YYYY-MM-DD",
  "endDate": "YYYY-MM-DD",
  "travelers": integer,
  "budget": "string",
  "interests": ["string"],
  "days": [
    {
      "dayNumber": integer,
      "date": "YYYY-MM-DD",
      "dayTitle": "string",
      "morningActivities": [
        {
          "name": "string",
          "description": "string",
          "time": "HH:MM",
          "duration": "string",
          "location": "string",
          "category": "string",
          "cost": number,
          "currency": "string",
          "icon": "string (single emoji)",
          "bookingUrl": "string",
          "notes": "string"
        }
      ],
      "afternoonActivities": [ ...same shape... ],
      "eveningActivities": [ ...same shape... ],
      "restaurants": [
        {
          "name": "string",
          "cuisine": "string",
          "description": "string",
          "address": "string",
          "phone": "string",
          "priceRange": "string",
          "rating": number,
          "timeSlot": "Breakfast" | "Lunch" | "Dinner",
          "bookingUrl": "string",
          "notes": "string"
        }
      ],
      "daySummary": "string",
      "estimatedCost": number
    }
  ],
  "accommodation": {
    "name": "string",
    "type": "string",
    "description": "string",
    "address": "string",
    "phone": "string",
    "rating": number,
    "priceRange": "string",
    "nightlyRate": number,
    "currency": "string",
    "amenities": "string",
    "bookingUrl": "string",
    "checkIn": "HH:MM",
    "checkOut": "HH:MM"
  },
  "totalEstimatedCost": number,
  "currency": "string",
  "travelTips": ["string"]
}
`, req.Destination, req.StartDate, req.EndDate, duration, req.Travelers,
		req.Budget, interests, transport, duration)
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
