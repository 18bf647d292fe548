// Package buffer provides a byte cache that batches small writes and hands
// them to a store callback in larger chunks.
//
// Cached absorbs writes until its fixed capacity would be exceeded, then
// flushes the accumulated bytes through a StoreFunc. A failed store leaves
// the cache exactly as it was, so no buffered byte is ever lost to a
// transient backend error; the caller can simply retry.
package buffer

import (
	"errors"
	"fmt"
)

// DefaultSize is the cache capacity used when NewCached is given a
// non-positive size.
const DefaultSize = 512

var (
	// ErrNoStore is returned when a flush is needed but no store callback
	// has been registered.
	ErrNoStore = errors.New("buffer: no store callback registered")

	// ErrStoreRejected is returned when the store callback consumed none of
	// the bytes offered to it without reporting its own error.
	ErrStoreRejected = errors.New("buffer: store callback rejected data")
)

// StoreFunc persists a batch of bytes and reports how many it consumed.
// Returning n < len(p) is a short store: the unconsumed tail stays cached
// and is offered again on the next flush.
type StoreFunc func(p []byte) (int, error)

// Cached is a fixed-size accumulate-and-flush byte cache.
//
// Cached is not safe for concurrent use.
type Cached struct {
	buf   []byte
	off   int
	store StoreFunc
}

// NewCached returns a cache of the given capacity backed by store. The
// callback may be nil and registered later with SetStore; flushing without
// one fails with ErrNoStore.
func NewCached(size int, store StoreFunc) *Cached {
	if size <= 0 {
		size = DefaultSize
	}
	return &Cached{
		buf:   make([]byte, size),
		store: store,
	}
}

// SetStore registers the callback invoked on flush.
func (c *Cached) SetStore(store StoreFunc) { c.store = store }

// Store caches p, flushing first when p would not fit in the remaining
// space. Data larger than the whole cache bypasses it: the cache is flushed
// and p goes straight to the callback. Partial caching never happens; on
// error the cache content is unchanged.
func (c *Cached) Store(p []byte) error {
	if len(p) > len(c.buf) {
		// Drain fully first so the cached bytes reach the callback
		// before p does. A short store leaves a tail behind, so a
		// single flush is not enough.
		for c.off > 0 {
			if err := c.Flush(); err != nil {
				return err
			}
		}
		return c.storeDirect(p)
	}

	// A short store can leave the cache still too full for p, so keep
	// flushing until it fits. Every successful flush consumes at least
	// one byte, so this terminates.
	for len(p) > len(c.buf)-c.off {
		if err := c.Flush(); err != nil {
			return err
		}
	}

	copy(c.buf[c.off:], p)
	c.off += len(p)
	return nil
}

// Flush drains the cached bytes through the store callback. A short store
// keeps the unconsumed tail cached; a failed store keeps everything.
func (c *Cached) Flush() error {
	if c.off == 0 {
		return nil
	}
	if c.store == nil {
		return ErrNoStore
	}

	n, err := c.store(c.buf[:c.off])
	if err != nil {
		return err
	}
	if n <= 0 {
		return ErrStoreRejected
	}
	if n > c.off {
		n = c.off
	}

	// Shift the unconsumed tail to the front.
	copy(c.buf, c.buf[n:c.off])
	c.off -= n
	return nil
}

// Len returns the number of bytes currently cached.
func (c *Cached) Len() int { return c.off }

// Cap returns the cache capacity.
func (c *Cached) Cap() int { return len(c.buf) }

func (c *Cached) storeDirect(p []byte) error {
	if c.store == nil {
		return ErrNoStore
	}
	n, err := c.store(p)
	if err != nil {
		return err
	}
	if n != len(p) {
		return fmt.Errorf("buffer: short direct store: %d of %d bytes", n, len(p))
	}
	return nil
}
