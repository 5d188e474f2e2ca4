package maps

import (
	"context"
	"fmt"
	"strings"

	"googlemaps.github.io/maps"

	"tripmind/internal/modules/itinerary"
)

// PlacesService handles interactions with Google Places API.
type PlacesService struct {
	client *maps.Client
}

// NewPlacesService creates a new PlacesService with the given API Key.
func NewPlacesService(apiKey string) (*PlacesService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesService{client: client}, nil
}

// Resolve canonicalises a free-text destination into the place name Google
// knows it by. An empty result or API failure leaves the caller free to keep
// the raw text.
func (s *PlacesService) Resolve(ctx context.Context, destination string) (string, error) {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return "", fmt.Errorf("empty destination")
	}

	r := &maps.TextSearchRequest{
		Query:    destination,
		Language: "en",
	}

	resp, err := s.client.TextSearch(ctx, r)
	if err != nil {
		return "", fmt.Errorf("places api error: %w", err)
	}
	if len(resp.Results) == 0 {
		return "", fmt.Errorf("no place found for %q", destination)
	}

	return resp.Results[0].Name, nil
}

// SearchAttractions finds highly rated points of interest near the destination.
// The planner attaches them to plan results when a Places key is configured.
func (s *PlacesService) SearchAttractions(ctx context.Context, destination string, limit int) ([]itinerary.Attraction, error) {
	if limit <= 0 {
		limit = 3
	}

	r := &maps.TextSearchRequest{
		Query:    fmt.Sprintf("top attractions in %s", destination),
		Language: "en",
	}

	resp, err := s.client.TextSearch(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	var results []itinerary.Attraction
	for _, result := range resp.Results {
		if result.Rating < 4.0 { // Filter for high quality
			continue
		}
		results = append(results, itinerary.Attraction{
			Name:    result.Name,
			Address: result.FormattedAddress,
			Rating:  float64(result.Rating),
		})
		if len(results) >= limit {
			break
		}
	}

	return results, nil
}
