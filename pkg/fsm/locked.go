package fsm

import "sync"

// Locked serializes access to a Machine with a mutex, for callers that
// drive one machine from several goroutines. The machine itself provides
// no internal locking; its in-progress flag only handles synchronous
// reentrancy within a single dispatch.
//
// State callbacks run while the lock is held. A callback that needs to
// request a transition must call the underlying Machine (whose reentrancy
// protocol defers it), never the Locked wrapper, or it will deadlock.
type Locked[I, O any] struct {
	mu sync.Mutex
	m  *Machine[I, O]
}

// NewLocked wraps m in a mutex-guarded facade.
func NewLocked[I, O any](m *Machine[I, O]) *Locked[I, O] {
	return &Locked[I, O]{m: m}
}

// Run routes one input to the machine under the lock.
func (l *Locked[I, O]) Run(in I) (O, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.Run(in)
}

// EnterState requests a transition under the lock.
func (l *Locked[I, O]) EnterState(next State[I, O]) State[I, O] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.EnterState(next)
}

// EnterStateImmediate applies a transition under the lock.
func (l *Locked[I, O]) EnterStateImmediate(next State[I, O]) State[I, O] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.EnterStateImmediate(next)
}

// Status reports the machine status under the lock.
func (l *Locked[I, O]) Status() Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.Status()
}

// Machine returns the wrapped machine. Only state callbacks already
// executing under the lock may use it.
func (l *Locked[I, O]) Machine() *Machine[I, O] { return l.m }
