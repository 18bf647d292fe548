// Package fsm implements a reentrancy-safe dynamic state machine.
//
// A Machine holds exactly one active State, routes every input to it via
// Run, and applies the transitions states request. The hard case it solves
// is the reentrant one: a state's own Update (or OnEnter/OnExit) calling
// back into the machine while its dispatch is still executing. Such
// requests are deferred through a bounded FIFO queue and applied at most
// one per Run call, so lifecycle hooks never recurse and every tick does a
// bounded amount of work.
//
// # States
//
// A State implements OnEnter, OnExit and Update. Update returns an output
// plus the requested next state: itself to stay, another state to
// transition, nil to halt. A halted machine ignores inputs until
// EnterState hands it a new state.
//
//	type blinking struct{ led *LED }
//
//	func (s *blinking) OnEnter() { s.led.On() }
//	func (s *blinking) OnExit()  { s.led.Off() }
//	func (s *blinking) Update(tick int) (string, fsm.State[int, string]) {
//	    if tick > 100 {
//	        return "done", nil // halt
//	    }
//	    return "blink", s
//	}
//
// # Ownership
//
// The machine stores its active state through a Policy. The default
// OwningPolicy treats the slot as exclusively owned: a state being
// replaced or cleared gets its Dispose method called (when implemented)
// exactly once. WithNonOwningPolicy switches to a bare reference that the
// machine never disposes, so caller-owned states can be reused across
// machines or re-entered later; keeping them alive is then the caller's
// job.
//
// # Deferred transitions
//
// EnterState called from inside a state callback queues the request and
// returns the unchanged current state. Queued requests drain in FIFO
// order, at most one per Run. The queue is bounded (DefaultQueueCapacity);
// a request arriving while it is full is dropped without any signal to the
// caller — wire an Observer to at least see the drops.
// EnterStateImmediate bypasses the queue entirely for callers that accept
// the recursion risk.
//
// OnExit fires when a transition is requested, not when a queued request
// is applied: draining runs only the incoming side (SetState plus
// OnEnter). A state that was itself installed by a drain and is replaced
// by the next queued request therefore never receives OnExit; states that
// must release resources on replacement should do so in Dispose under the
// owning policy.
//
// # Closed state sets
//
// When the states are a small fixed set rather than open-ended objects,
// TableMachine offers a simpler synchronous machine keyed by comparable
// state ids, with no policy and no queue.
//
// # Concurrency
//
// A Machine is single-threaded and non-blocking. Locked wraps one in a
// mutex for multi-goroutine callers.
package fsm
