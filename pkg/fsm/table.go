package fsm

// Handler processes one input while a TableMachine is in a given state. It
// returns the produced output, the next state id, and whether the machine
// should keep running; returning false halts it after this input.
type Handler[S comparable, I, O any] func(in I) (O, S, bool)

// TableMachine is the closed-set sibling of Machine: its states are values
// of a comparable id type known up front, dispatch is a map lookup, and
// transitions resolve synchronously as each handler returns. There is no
// ownership policy and no deferred queue because handlers cannot call back
// into the machine mid-dispatch.
//
// Use it when the state set is small and fixed; use Machine when states
// are open-ended objects with their own lifecycle.
type TableMachine[S comparable, I, O any] struct {
	current  S
	running  bool
	handlers map[S]Handler[S, I, O]
	enter    map[S]func()
	exit     map[S]func()
}

// NewTable creates a TableMachine that will start in the initial state.
// Register handlers with Handle, then call Start.
func NewTable[S comparable, I, O any](initial S) *TableMachine[S, I, O] {
	return &TableMachine[S, I, O]{
		current:  initial,
		handlers: make(map[S]Handler[S, I, O]),
		enter:    make(map[S]func()),
		exit:     make(map[S]func()),
	}
}

// Handle registers the handler for a state id, replacing any previous one.
// It returns the machine for chaining.
func (m *TableMachine[S, I, O]) Handle(state S, h Handler[S, I, O]) *TableMachine[S, I, O] {
	m.handlers[state] = h
	return m
}

// OnEnter registers a hook that runs whenever the given state becomes
// current, including the initial state on Start.
func (m *TableMachine[S, I, O]) OnEnter(state S, fn func()) *TableMachine[S, I, O] {
	m.enter[state] = fn
	return m
}

// OnExit registers a hook that runs whenever the given state stops being
// current, including on halt.
func (m *TableMachine[S, I, O]) OnExit(state S, fn func()) *TableMachine[S, I, O] {
	m.exit[state] = fn
	return m
}

// Start activates the machine, running the initial state's enter hook.
// Starting an already-running machine is a no-op.
func (m *TableMachine[S, I, O]) Start() *TableMachine[S, I, O] {
	if m.running {
		return m
	}
	m.running = true
	m.runEnter(m.current)
	return m
}

// Run routes one input to the current state's handler. The second return
// value is false when the machine is halted or the current state has no
// handler; a missing handler halts the machine.
func (m *TableMachine[S, I, O]) Run(in I) (O, bool) {
	var zero O
	if !m.running {
		return zero, false
	}

	h, ok := m.handlers[m.current]
	if !ok {
		m.halt()
		return zero, false
	}

	out, next, keep := h(in)
	if !keep {
		m.halt()
		return out, true
	}

	if next != m.current {
		m.runExit(m.current)
		m.current = next
		m.runEnter(next)
	}

	return out, true
}

// Current returns the current state id. It is meaningful only while the
// machine is running.
func (m *TableMachine[S, I, O]) Current() S { return m.current }

// Status reports Running between Start and halt, Halted otherwise.
func (m *TableMachine[S, I, O]) Status() Status {
	if m.running {
		return Running
	}
	return Halted
}

func (m *TableMachine[S, I, O]) halt() {
	m.runExit(m.current)
	m.running = false
}

func (m *TableMachine[S, I, O]) runEnter(state S) {
	if fn := m.enter[state]; fn != nil {
		fn()
	}
}

func (m *TableMachine[S, I, O]) runExit(state S) {
	if fn := m.exit[state]; fn != nil {
		fn()
	}
}
