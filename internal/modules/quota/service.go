package quota

import "context"

// Service orchestrates monthly generation-quota logic.
type Service struct {
	store *Store
}

// NewService creates a Service backed by the given Store.
func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Use deducts one generation from the user's monthly allowance.
// If the user row does not exist yet it is initialised and the generation is immediately consumed.
// Returns ErrQuotaExhausted when the quota for the current month is exhausted.
func (s *Service) Use(ctx context.Context, userID string) error {
	err := s.store.Use(ctx, userID)
	if err != ErrQuotaExhausted {
		return err
	}

	// Row may be missing: try to create it, then retry the deduction once.
	if initErr := s.store.EnsureUser(ctx, userID); initErr != nil {
		return initErr
	}
	return s.store.Use(ctx, userID)
}
