package fsm

// State is the polymorphic unit of machine behavior. One State is active at
// a time; the machine routes every input to it and applies the transition
// it requests.
//
// States are compared by interface identity, so implementations should use
// pointer receivers: two handles are "the same state" exactly when they
// point at the same instance.
type State[I, O any] interface {
	// OnEnter runs once when the state becomes active.
	OnEnter()

	// OnExit runs once when the state stops being active.
	OnExit()

	// Update processes one input and returns the produced output together
	// with the requested next state:
	//
	//   - the receiver itself: stay in this state
	//   - a different state:   request a transition
	//   - nil:                 halt the machine
	//
	// Update must not mutate machine bookkeeping directly; it only
	// proposes the next state.
	Update(in I) (O, State[I, O])
}

// Disposer is implemented by states that need to release resources when an
// owning machine discards them. Non-owning machines never call it.
type Disposer interface {
	Dispose()
}

// Status reports whether a machine currently has an active state.
type Status int

const (
	// Halted means no state is active; Run is a no-op until a new state
	// is entered.
	Halted Status = iota

	// Running means a state is active and receiving inputs.
	Running
)

func (s Status) String() string {
	switch s {
	case Halted:
		return "halted"
	case Running:
		return "running"
	default:
		return "unknown"
	}
}
