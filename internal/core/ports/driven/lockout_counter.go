package driven

import "context"

// LockoutCounter provides atomic access-failed counting. The default
// read-modify-write through the user store may under-count under
// concurrent failed attempts; wiring a counter with an atomic
// increment (such as the Redis adapter) closes that gap. The user
// record remains the persisted source of truth; the counter only
// arbitrates concurrent increments.
type LockoutCounter interface {
	// Increment adds one to the counter for the key and returns the
	// new value.
	Increment(ctx context.Context, key string) (int, error)

	// Reset clears the counter for the key.
	Reset(ctx context.Context, key string) error
}
