package bricks

import (
	"database/sql"

	"github.com/petrijr/bricks/internal/sink"
	"github.com/petrijr/bricks/pkg/buffer"
	"github.com/petrijr/bricks/pkg/fsm"
)

// Re-export the core fsm types so users don't need to dig into pkg/fsm.

type (
	State[I, O any]    = fsm.State[I, O]
	Machine[I, O any]  = fsm.Machine[I, O]
	Policy[I, O any]   = fsm.Policy[I, O]
	Option[I, O any]   = fsm.Option[I, O]
	Observer[I, O any] = fsm.Observer[I, O]
	Status             = fsm.Status
	Disposer           = fsm.Disposer
)

// Re-export status values for convenience.

const (
	StatusHalted  = fsm.Halted
	StatusRunning = fsm.Running
)

// NewMachine constructs a halted dynamic state machine; see fsm.New.
func NewMachine[I, O any](opts ...fsm.Option[I, O]) *fsm.Machine[I, O] {
	return fsm.New(opts...)
}

// NewSQLiteSink returns a buffer.StoreFunc that persists each flushed
// batch as a row in the given SQLite database, creating the schema if
// needed. The caller is responsible for importing a SQLite driver such as
// "modernc.org/sqlite".
func NewSQLiteSink(db *sql.DB) (buffer.StoreFunc, error) {
	s, err := sink.NewSQLite(db)
	if err != nil {
		return nil, err
	}
	return s.Write, nil
}
