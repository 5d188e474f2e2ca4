package quota

import "errors"

// ErrQuotaExhausted is returned when a user has no generations remaining for the current month.
var ErrQuotaExhausted = errors.New("monthly generation quota exhausted")

// DefaultAllowance is the number of itinerary generations granted per month.
const DefaultAllowance = 50
