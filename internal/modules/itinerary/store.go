// README: Store persists saved trips in Postgres and caches responses in Redis.
package itinerary

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// ErrNoPersistence is returned when a persistence operation is requested but
// the store has no database behind it.
var ErrNoPersistence = errors.New("trip persistence is not configured")

// DefaultPreferences is returned for users with no stored preference row.
const DefaultPreferences = "no saved preferences"

type Store struct {
	db    *pgxpool.Pool
	redis *redis.Client
}

func NewStore(db *pgxpool.Pool, rdb *redis.Client) *Store {
	return &Store{db: db, redis: rdb}
}

// RequestKey derives a stable cache key from the canonical request.
func RequestKey(req ItineraryRequest) string {
	raw, _ := json.Marshal(req)
	sum := sha256.Sum256(raw)
	return "itinerary:" + hex.EncodeToString(sum[:])
}

// CachedItinerary returns a previously generated response for the key, or
// (nil, false) on a miss. Decode failures count as misses.
func (s *Store) CachedItinerary(ctx context.Context, key string) (*ItineraryResponse, bool) {
	if s == nil || s.redis == nil {
		return nil, false
	}
	raw, err := s.redis.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var resp ItineraryResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, false
	}
	return &resp, true
}

// CacheItinerary stores a generated response under the key with the given TTL.
func (s *Store) CacheItinerary(ctx context.Context, key string, resp *ItineraryResponse, ttl time.Duration) error {
	if s == nil || s.redis == nil {
		return nil
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, key, raw, ttl).Err()
}

// SaveTrip persists a generated itinerary for a user and returns the trip id.
func (s *Store) SaveTrip(ctx context.Context, userID string, resp *ItineraryResponse) (string, error) {
	if s == nil || s.db == nil {
		return "", ErrNoPersistence
	}
	payload, err := json.Marshal(resp)
	if err != nil {
		return "", err
	}
	id := newTripID()
	_, err = s.db.Exec(ctx, `
		INSERT INTO trips (id, user_id, destination, start_date, end_date, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, userID, resp.Destination, resp.StartDate, resp.EndDate, payload, time.Now(),
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// UserPreferences returns the stored preference text for a user, or
// DefaultPreferences when none exists.
func (s *Store) UserPreferences(ctx context.Context, userID string) (string, error) {
	if s == nil || s.db == nil {
		return "", ErrNoPersistence
	}
	var prefs string
	err := s.db.QueryRow(ctx,
		`SELECT preferences FROM user_preferences WHERE user_id = $1`, userID,
	).Scan(&prefs)
	if errors.Is(err, pgx.ErrNoRows) {
		return DefaultPreferences, nil
	}
	if err != nil {
		return "", err
	}
	return prefs, nil
}

func newTripID() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
