// Package bricks is a small collection of reusable building blocks for Go
// applications, centered on a reentrancy-safe dynamic state machine.
//
// Everything here runs fully in-process: no goroutines are spawned, no I/O
// happens unless a caller wires it in, and each brick is usable on its own.
//
// # Bricks
//
//  1. fsm — dynamic state machine (the core)
//  2. ring — bounded FIFO queue
//  3. buffer — accumulate-and-flush byte cache
//  4. version — bit-packed semantic version
//  5. randgen — injectable random fixture generator
//
// # State machine
//
// pkg/fsm dispatches inputs to a single active state object and applies
// the transitions states request — including requests made from inside the
// very callback the machine is currently executing. Reentrant requests are
// deferred through a bounded FIFO queue and applied at most one per tick,
// so lifecycle hooks never recurse. Two ownership disciplines are
// available behind one interface: an owning machine disposes states it
// discards, a non-owning machine holds bare references whose lifetime
// belongs to the caller. A TableMachine sibling covers small closed state
// sets without the dynamic machinery.
//
//	m := fsm.New[int, string]()
//	m.EnterState(&idle{})
//	out, ok := m.Run(42)
//
// # Queue
//
// pkg/ring is the fixed-capacity FIFO backing the machine's deferred
// queue, exposed on its own: allocation-free after construction, with
// drop-on-full enqueue semantics.
//
// # Buffer
//
// pkg/buffer batches byte writes in a fixed cache and hands them to a
// store callback only when the cache would overflow. A failed store leaves
// the cache untouched, so no buffered byte is lost to a transient backend
// error. NewSQLiteSink adapts a SQLite database into such a callback:
//
//	db, _ := sql.Open("sqlite", "batches.db")
//	store, _ := bricks.NewSQLiteSink(db)
//	cache := buffer.NewCached(4096, store)
//
// # Version and randgen
//
// pkg/version packs major.minor.patch into one ordered uint32 (6/10/16
// bits). pkg/randgen generates random scalars, byte slices and strings
// from an explicitly injected, seedable source, mainly for test fixtures.
//
// The most used fsm types are re-exported at the root so typical callers
// only import bricks and pkg/fsm.
package bricks
