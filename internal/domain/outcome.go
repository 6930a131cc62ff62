package domain

// Outcome carries either a computed value or an explanatory failure. It is
// the sole channel for expected failures in the domain and application
// layers; callers branch on IsSuccess/IsFailure before reading the payload.
type Outcome[T, E any] struct {
	ok    bool
	value T
	err   E
}

// Success wraps a value in a success-tagged outcome.
func Success[T, E any](value T) Outcome[T, E] {
	return Outcome[T, E]{ok: true, value: value}
}

// Failure wraps an error in a failure-tagged outcome.
func Failure[T, E any](err E) Outcome[T, E] {
	return Outcome[T, E]{err: err}
}

// IsSuccess reports whether the outcome holds a value.
func (o Outcome[T, E]) IsSuccess() bool { return o.ok }

// IsFailure reports whether the outcome holds an error.
func (o Outcome[T, E]) IsFailure() bool { return !o.ok }

// Value returns the success payload. Reading the value of a failed outcome
// is a caller bug, not a recoverable state, so it panics.
func (o Outcome[T, E]) Value() T {
	if !o.ok {
		panic("outcome: cannot access value of a failed outcome")
	}
	return o.value
}

// Err returns the failure payload. It panics when the outcome is a success.
func (o Outcome[T, E]) Err() E {
	if o.ok {
		panic("outcome: cannot access error of a successful outcome")
	}
	return o.err
}
