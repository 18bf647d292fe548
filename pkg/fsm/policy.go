package fsm

// Policy abstracts how the machine stores and replaces its active state.
// Two implementations exist: OwningPolicy disposes states it discards,
// NonOwningPolicy holds a bare reference and never disposes anything.
//
// The transition protocol is identical under both; only the discard
// behavior differs.
type Policy[I, O any] interface {
	// SetState installs next as the current state and returns it. The
	// previous state, if any, is released per the policy's semantics.
	SetState(next State[I, O]) State[I, O]

	// Get returns the current state without side effects, or nil when
	// none is stored.
	Get() State[I, O]

	// Clear removes the current state, releasing it per the policy's
	// semantics.
	Clear()
}

// OwningPolicy stores a single exclusively-owned state slot. A state being
// replaced or cleared has its Dispose method called exactly once, when it
// implements Disposer. Replacing a state with itself never disposes it.
type OwningPolicy[I, O any] struct {
	current State[I, O]
}

// NewOwningPolicy returns an empty owning slot.
func NewOwningPolicy[I, O any]() *OwningPolicy[I, O] {
	return &OwningPolicy[I, O]{}
}

var _ Policy[int, string] = (*OwningPolicy[int, string])(nil)

func (p *OwningPolicy[I, O]) SetState(next State[I, O]) State[I, O] {
	if old := p.current; old != nil && old != next {
		dispose(old)
	}
	p.current = next
	return next
}

func (p *OwningPolicy[I, O]) Get() State[I, O] { return p.current }

func (p *OwningPolicy[I, O]) Clear() {
	if p.current != nil {
		dispose(p.current)
		p.current = nil
	}
}

// NonOwningPolicy stores a bare reference to a caller-owned state. Neither
// SetState nor Clear ever disposes the referenced instance, which lets
// long-lived states be reused across machines or re-entered later. The
// caller must keep the instance alive for as long as the machine may
// read it.
type NonOwningPolicy[I, O any] struct {
	current State[I, O]
}

// NewNonOwningPolicy returns an empty non-owning slot.
func NewNonOwningPolicy[I, O any]() *NonOwningPolicy[I, O] {
	return &NonOwningPolicy[I, O]{}
}

var _ Policy[int, string] = (*NonOwningPolicy[int, string])(nil)

func (p *NonOwningPolicy[I, O]) SetState(next State[I, O]) State[I, O] {
	p.current = next
	return next
}

func (p *NonOwningPolicy[I, O]) Get() State[I, O] { return p.current }

func (p *NonOwningPolicy[I, O]) Clear() { p.current = nil }

func dispose(s any) {
	if d, ok := s.(Disposer); ok {
		d.Dispose()
	}
}
