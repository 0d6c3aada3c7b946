// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// Clock provides the current time. Streak and score computations take the
// reference date from an injected Clock rather than reading the system
// clock, so tests can pin "today".
type Clock interface {
	// Now returns the current instant in UTC.
	Now() time.Time
}
