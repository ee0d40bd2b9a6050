package usecase

import "time"

const (
	// BalanceCacheTTL bounds how long a derived balance may live in the
	// cache. Appends invalidate eagerly; the TTL is a backstop.
	BalanceCacheTTL = 5 * time.Minute

	// DefaultListLimit and MaxListLimit bound paginated reads.
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// ClampLimit normalizes a caller-supplied page size: non-positive values get
// the default, oversized ones are capped.
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}
