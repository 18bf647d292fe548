package fsm

import (
	"github.com/petrijr/bricks/pkg/ring"
)

// DefaultQueueCapacity is the size of the deferred-transition queue when
// WithQueueCapacity is not given.
const DefaultQueueCapacity = 10

// Machine is a dynamic state machine that routes inputs to a single active
// State and applies the transitions states request, including requests
// made reentrantly from inside the very callback the machine is currently
// executing.
//
// Reentrant requests are deferred through a bounded FIFO queue and applied
// at most one per Run call, so transitions never recurse into state
// callbacks and the work done per tick stays bounded. Requests that arrive
// while the queue is full are dropped; the configured Observer is the only
// place that sees the drop.
//
// A Machine is single-threaded: it never blocks, and it provides no
// internal locking. Callers that drive one machine from several goroutines
// must serialize access externally (see Locked).
type Machine[I, O any] struct {
	policy   Policy[I, O]
	pending  *ring.Buffer[State[I, O]]
	observer Observer[I, O]

	// inProgress is true while a dispatch is executing. A transition
	// requested while it is set is deferred instead of applied, which is
	// what keeps state callbacks from recursing.
	inProgress bool
}

// New constructs a halted Machine. By default it owns its states (see
// OwningPolicy) and defers up to DefaultQueueCapacity transition requests.
func New[I, O any](opts ...Option[I, O]) *Machine[I, O] {
	m := &Machine[I, O]{}
	for _, opt := range opts {
		opt(m)
	}
	if m.policy == nil {
		m.policy = NewOwningPolicy[I, O]()
	}
	if m.pending == nil {
		m.pending = ring.New[State[I, O]](DefaultQueueCapacity)
	}
	if m.observer == nil {
		m.observer = NoopObserver[I, O]{}
	}
	return m
}

// Run routes one input to the active state and returns its output. The
// second return value is false when the machine is halted, in which case
// the input is ignored.
//
// When the active state's Update returns a different state, the active
// state exits immediately and the request joins the deferred queue. Run
// then drains at most one queued request — which may be an older request
// queued by a reentrant EnterState call — and makes it the active state.
func (m *Machine[I, O]) Run(in I) (O, bool) {
	defer m.beginDispatch()()

	cur := m.policy.Get()
	if cur == nil {
		var zero O
		return zero, false
	}

	out, next := cur.Update(in)

	// Re-read the active state: an EnterStateImmediate inside Update may
	// already have moved the machine.
	if cur = m.policy.Get(); next != cur {
		if cur != nil {
			cur.OnExit()
		}
		m.enqueue(next)
	}

	if req, ok := m.pending.Dequeue(); ok {
		m.applyDeferred(req)
	}

	return out, true
}

// EnterState requests a transition to next and returns the resulting
// active state.
//
// Called from outside any state callback, the transition applies
// immediately: the old state exits, next enters, and next is returned.
// Called reentrantly — from inside OnEnter, OnExit or Update — the request
// is deferred and the still-active current state is returned; the request
// drains on a later Run call, in FIFO order. A nil next halts the machine
// once applied.
func (m *Machine[I, O]) EnterState(next State[I, O]) State[I, O] {
	if m.inProgress {
		m.enqueue(next)
		return m.policy.Get()
	}

	defer m.beginDispatch()()
	return m.transition(next)
}

// EnterStateImmediate applies the transition synchronously even when a
// dispatch is in progress, bypassing the deferred queue. It exists for
// callers that need the transition visible before the current Run call
// returns. Invoking it from inside a state callback can recurse into
// OnEnter/OnExit; keeping that safe is the caller's responsibility.
func (m *Machine[I, O]) EnterStateImmediate(next State[I, O]) State[I, O] {
	defer m.beginDispatch()()
	return m.transition(next)
}

// Status reports Running while a state is active and Halted otherwise.
func (m *Machine[I, O]) Status() Status {
	if m.policy.Get() == nil {
		return Halted
	}
	return Running
}

// Pending returns the number of deferred transition requests waiting to
// be applied.
func (m *Machine[I, O]) Pending() int { return m.pending.Len() }

// beginDispatch sets the in-progress flag and returns the func restoring
// it to its previous value. Used with defer so the flag is restored on
// every return path, including from nested dispatches.
func (m *Machine[I, O]) beginDispatch() func() {
	prev := m.inProgress
	m.inProgress = true
	return func() { m.inProgress = prev }
}

func (m *Machine[I, O]) enqueue(next State[I, O]) {
	if !m.pending.Enqueue(next) {
		m.observer.OnRequestDropped(next)
	}
}

// transition applies a direct (non-deferred) state change: exit old,
// enter new. Transitioning to the already-active state is a no-op.
func (m *Machine[I, O]) transition(next State[I, O]) State[I, O] {
	cur := m.policy.Get()
	if next == cur {
		return cur
	}

	if cur != nil {
		cur.OnExit()
	}

	if next == nil {
		m.policy.Clear()
		m.observer.OnHalt(cur)
		return nil
	}

	s := m.policy.SetState(next)
	s.OnEnter()
	m.observer.OnTransition(cur, s)
	return s
}

// applyDeferred installs a request popped from the deferred queue. The
// outgoing state already ran OnExit when its transition was requested, so
// only the incoming side of the lifecycle runs here.
func (m *Machine[I, O]) applyDeferred(next State[I, O]) {
	cur := m.policy.Get()
	if next == cur {
		return
	}

	if next == nil {
		m.policy.Clear()
		m.observer.OnHalt(cur)
		return
	}

	s := m.policy.SetState(next)
	s.OnEnter()
	m.observer.OnTransition(cur, s)
}
