package fsm

import "github.com/petrijr/bricks/pkg/ring"

// Option configures a Machine during construction.
type Option[I, O any] func(*Machine[I, O])

// WithPolicy selects the state-ownership policy. The default is an
// OwningPolicy.
func WithPolicy[I, O any](p Policy[I, O]) Option[I, O] {
	return func(m *Machine[I, O]) {
		if p != nil {
			m.policy = p
		}
	}
}

// WithNonOwningPolicy makes the machine hold states by bare reference,
// leaving their lifetime entirely to the caller.
func WithNonOwningPolicy[I, O any]() Option[I, O] {
	return WithPolicy[I, O](NewNonOwningPolicy[I, O]())
}

// WithQueueCapacity sets the deferred-transition queue capacity. Values
// below 1 keep the default.
func WithQueueCapacity[I, O any](n int) Option[I, O] {
	return func(m *Machine[I, O]) {
		if n >= 1 {
			m.pending = ring.New[State[I, O]](n)
		}
	}
}

// WithObserver wires an Observer into the machine's lifecycle events.
func WithObserver[I, O any](obs Observer[I, O]) Option[I, O] {
	return func(m *Machine[I, O]) {
		if obs != nil {
			m.observer = obs
		}
	}
}
