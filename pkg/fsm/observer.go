package fsm

import (
	"fmt"
	"log/slog"
)

// Observer receives callbacks for machine lifecycle events. Implementations
// should be fast and non-blocking; they run synchronously inside the
// dispatch that triggered them.
type Observer[I, O any] interface {
	// OnTransition is called after to became active. from is nil when the
	// machine was halted before the transition.
	OnTransition(from, to State[I, O])

	// OnHalt is called when the machine halts, with the state that was
	// active before (nil for EnterState(nil) on a fresh machine).
	OnHalt(from State[I, O])

	// OnRequestDropped is called when a deferred transition request is
	// discarded because the queue is at capacity. The caller of
	// EnterState receives no other signal that its request was lost.
	OnRequestDropped(req State[I, O])
}

// NoopObserver is an Observer that does nothing. It is the default when no
// observer is configured.
type NoopObserver[I, O any] struct{}

func (NoopObserver[I, O]) OnTransition(from, to State[I, O]) {}
func (NoopObserver[I, O]) OnHalt(from State[I, O])           {}
func (NoopObserver[I, O]) OnRequestDropped(req State[I, O])  {}

// CompositeObserver fans out events to multiple observers.
type CompositeObserver[I, O any] struct {
	observers []Observer[I, O]
}

// NewCompositeObserver creates an Observer that forwards events to each
// non-nil observer in obs.
func NewCompositeObserver[I, O any](obs ...Observer[I, O]) Observer[I, O] {
	filtered := make([]Observer[I, O], 0, len(obs))
	for _, o := range obs {
		if o != nil {
			filtered = append(filtered, o)
		}
	}
	if len(filtered) == 0 {
		return NoopObserver[I, O]{}
	}
	if len(filtered) == 1 {
		return filtered[0]
	}
	return &CompositeObserver[I, O]{observers: filtered}
}

func (c *CompositeObserver[I, O]) OnTransition(from, to State[I, O]) {
	for _, o := range c.observers {
		o.OnTransition(from, to)
	}
}

func (c *CompositeObserver[I, O]) OnHalt(from State[I, O]) {
	for _, o := range c.observers {
		o.OnHalt(from)
	}
}

func (c *CompositeObserver[I, O]) OnRequestDropped(req State[I, O]) {
	for _, o := range c.observers {
		o.OnRequestDropped(req)
	}
}

// LoggingObserver writes structured logs using log/slog. States that
// implement fmt.Stringer are logged by name, others by Go type.
type LoggingObserver[I, O any] struct {
	Logger *slog.Logger
}

// NewLoggingObserver creates an Observer that logs machine lifecycle
// events using the provided slog.Logger. If logger is nil, slog.Default()
// is used.
func NewLoggingObserver[I, O any](logger *slog.Logger) Observer[I, O] {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingObserver[I, O]{Logger: logger}
}

func (o *LoggingObserver[I, O]) OnTransition(from, to State[I, O]) {
	o.Logger.Info("fsm_transition",
		slog.String("from", stateName(from)),
		slog.String("to", stateName(to)),
	)
}

func (o *LoggingObserver[I, O]) OnHalt(from State[I, O]) {
	o.Logger.Info("fsm_halt",
		slog.String("from", stateName(from)),
	)
}

func (o *LoggingObserver[I, O]) OnRequestDropped(req State[I, O]) {
	o.Logger.Warn("fsm_request_dropped",
		slog.String("state", stateName(req)),
	)
}

func stateName(s any) string {
	if s == nil {
		return "<none>"
	}
	if str, ok := s.(fmt.Stringer); ok {
		return str.String()
	}
	return fmt.Sprintf("%T", s)
}
