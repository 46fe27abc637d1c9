// File: internal/ownership/cell.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Atomic ownership state for a single raw resource value.

package ownership

import (
	"runtime"
	"sync/atomic"
)

// Cell states. The zero Cell is empty so that a zero owner never refers to
// descriptor 0 or a NULL handle by accident.
const (
	stateEmpty int32 = iota
	stateLive
	stateReleased
	stateDisowned
)

// Cell holds a raw resource value and records whether it is still owned.
// Exactly one transition out of the live state ever succeeds, which is what
// makes release happen at most once.
//
// A nil *Cell behaves as an empty one.
type Cell[R comparable] struct {
	raw     R
	state   atomic.Int32
	kind    string
	release func(R) error
}

// New returns a live cell for raw on its own allocation, with the garbage
// collection fallback armed. Owners hold the returned pointer, so they can be
// embedded by value anywhere.
func New[R comparable](kind string, raw R, release func(R) error) *Cell[R] {
	c := &Cell[R]{kind: kind, release: release}
	c.Init(raw)
	runtime.SetFinalizer(c, (*Cell[R]).reclaim)
	return c
}

func (c *Cell[R]) reclaim() {
	Reclaim(c.kind, c, c.release)
}

// Init makes the cell live with raw. It must only be called on an empty cell.
func (c *Cell[R]) Init(raw R) {
	c.raw = raw
	c.state.Store(stateLive)
}

// Empty reports whether the cell never held a value. Released and disowned
// cells are spent, not empty.
func (c *Cell[R]) Empty() bool {
	return c == nil || c.state.Load() == stateEmpty
}

// Live reports whether the cell still owns its value.
func (c *Cell[R]) Live() bool {
	return c != nil && c.state.Load() == stateLive
}

// Raw returns the owned value. ok is false once the value was released or
// handed over.
func (c *Cell[R]) Raw() (raw R, ok bool) {
	if !c.Live() {
		return raw, false
	}
	return c.raw, true
}

// MustRaw returns the owned value or panics. Using an owner after Close or
// after its value was handed over is a programming error.
func (c *Cell[R]) MustRaw(kind string) R {
	raw, ok := c.Raw()
	if !ok {
		panic(kind + ": use of a closed or consumed owner")
	}
	return raw
}

// Release hands the value to release if and only if the cell is live.
// released reports whether this call won the transition.
func (c *Cell[R]) Release(release func(R) error) (released bool, err error) {
	if c == nil || !c.state.CompareAndSwap(stateLive, stateReleased) {
		return false, nil
	}
	return true, release(c.raw)
}

// Disown gives up ownership without releasing and returns the value.
func (c *Cell[R]) Disown() (raw R, ok bool) {
	if c == nil || !c.state.CompareAndSwap(stateLive, stateDisowned) {
		return raw, false
	}
	return c.raw, true
}

// Close releases a cell made by New through its own release function and
// disarms the fallback.
func (c *Cell[R]) Close() (released bool, err error) {
	if c == nil {
		return false, nil
	}
	released, err = c.Release(c.release)
	if released {
		runtime.SetFinalizer(c, nil)
	}
	return released, err
}

// Take disowns a cell made by New and disarms the fallback.
func (c *Cell[R]) Take() (raw R, ok bool) {
	raw, ok = c.Disown()
	if ok {
		runtime.SetFinalizer(c, nil)
	}
	return raw, ok
}
