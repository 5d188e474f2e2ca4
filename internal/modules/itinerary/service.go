// README: Planner service orchestrates build -> guard -> cache -> quota -> generate -> render.
package itinerary

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"
)

// Generator produces an itinerary for a canonical request. Implemented by
// the AI providers; any failure is classified by this service.
type Generator interface {
	GenerateItinerary(ctx context.Context, req ItineraryRequest) (*ItineraryResponse, error)
}

// DestinationResolver canonicalises a free-text destination. Resolution is
// best-effort: errors keep the raw text.
type DestinationResolver interface {
	Resolve(ctx context.Context, destination string) (string, error)
}

// QuotaService deducts one generation from a user's allowance.
type QuotaService interface {
	Use(ctx context.Context, userID string) error
}

// Attraction is a real, highly rated point of interest near the destination.
type Attraction struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Rating  float64 `json:"rating"`
}

// AttractionFinder looks up real places near a destination. Lookups are
// best-effort: errors leave the plan without attraction enrichment.
type AttractionFinder interface {
	SearchAttractions(ctx context.Context, destination string, limit int) ([]Attraction, error)
}

var (
	// ErrPlanInFlight rejects a plan action while another one for the same
	// client is still running.
	ErrPlanInFlight = errors.New("a planning request is already in flight")

	// ErrGenerationFailed is the single classified failure for any
	// generation problem: network, provider, or malformed payload.
	ErrGenerationFailed = errors.New("itinerary generation failed")
)

// DefaultCacheTTL is how long generated responses stay cached.
const DefaultCacheTTL = time.Hour

type Service struct {
	gen         Generator
	resolver    DestinationResolver
	quota       QuotaService
	store       *Store
	attractions AttractionFinder
	cacheTTL    time.Duration
	now         func() time.Time

	inflight sync.Map // client key -> struct{}
}

// NewService wires a planner. resolver, quota and store may be nil; the
// corresponding steps are skipped.
func NewService(gen Generator, resolver DestinationResolver, quota QuotaService, store *Store) *Service {
	return &Service{
		gen:      gen,
		resolver: resolver,
		quota:    quota,
		store:    store,
		cacheTTL: DefaultCacheTTL,
		now:      time.Now,
	}
}

// SetCacheTTL overrides the response cache TTL.
func (s *Service) SetCacheTTL(ttl time.Duration) {
	if ttl > 0 {
		s.cacheTTL = ttl
	}
}

// SetAttractionFinder enables attraction enrichment on plan results.
func (s *Service) SetAttractionFinder(f AttractionFinder) {
	s.attractions = f
}

// PlanResult carries the canonical request, the validated response, the
// display groupings and any real-place enrichment for one planning action.
type PlanResult struct {
	Request     ItineraryRequest   `json:"request"`
	Itinerary   *ItineraryResponse `json:"itinerary"`
	Display     Display            `json:"display"`
	Attractions []Attraction       `json:"attractions,omitempty"`
}

// Plan runs one full planning action for the given client key. A second
// call with the same key while one is running returns ErrPlanInFlight;
// validation errors surface before any generation is attempted.
func (s *Service) Plan(ctx context.Context, clientKey string, form PlanForm) (*PlanResult, error) {
	req, err := BuildRequest(form, s.now())
	if err != nil {
		return nil, err
	}

	if _, busy := s.inflight.LoadOrStore(clientKey, struct{}{}); busy {
		return nil, ErrPlanInFlight
	}
	defer s.inflight.Delete(clientKey)

	if s.resolver != nil {
		if resolved, err := s.resolver.Resolve(ctx, req.Destination); err != nil {
			log.Printf("destination resolve %q: %v", req.Destination, err)
		} else if resolved != "" {
			req.Destination = resolved
		}
	}

	resp, err := s.Generate(ctx, form.UserID, req)
	if err != nil {
		return nil, err
	}

	result := &PlanResult{Request: req, Itinerary: resp, Display: Render(resp)}

	if s.attractions != nil {
		if places, err := s.attractions.SearchAttractions(ctx, req.Destination, 3); err != nil {
			log.Printf("attraction lookup %q: %v", req.Destination, err)
		} else {
			result.Attractions = places
		}
	}

	return result, nil
}

// Generate produces a validated itinerary for a canonical request, consulting
// the cache first and deducting quota for identified users. Any provider or
// validation failure comes back as ErrGenerationFailed.
func (s *Service) Generate(ctx context.Context, userID string, req ItineraryRequest) (*ItineraryResponse, error) {
	if _, err := req.DurationDays(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDates, err)
	}

	key := RequestKey(req)
	if cached, ok := s.store.CachedItinerary(ctx, key); ok {
		return cached, nil
	}

	if s.quota != nil && userID != "" {
		if err := s.quota.Use(ctx, userID); err != nil {
			return nil, err
		}
	}

	resp, err := s.gen.GenerateItinerary(ctx, req)
	if err != nil {
		log.Printf("generation error for %s: %v", req.Destination, err)
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	if err := resp.Validate(); err != nil {
		log.Printf("generation validation error for %s: %v", req.Destination, err)
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	if err := s.store.CacheItinerary(ctx, key, resp, s.cacheTTL); err != nil {
		log.Printf("cache store: %v", err)
	}

	return resp, nil
}

// SaveTrip persists an itinerary for a user.
func (s *Service) SaveTrip(ctx context.Context, userID string, resp *ItineraryResponse) (string, error) {
	return s.store.SaveTrip(ctx, userID, resp)
}

// UserPreferences returns the stored preference text for a user.
func (s *Service) UserPreferences(ctx context.Context, userID string) (string, error) {
	return s.store.UserPreferences(ctx, userID)
}
