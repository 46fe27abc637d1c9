//go:build windows

// File: handle/handle_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Generic Windows HANDLE kinds. Sockets have their own kinds because they are
// released with closesocket rather than CloseHandle.

package handle

import (
	"fmt"

	"golang.org/x/sys/windows"

	"github.com/momentics/hioload-fd/internal/ownership"
)

// RawHandle is a bare Windows HANDLE.
type RawHandle = windows.Handle

// nullHandle is the "no handle" sentinel for most handle-returning APIs.
const nullHandle RawHandle = 0

// closeHandle is swapped by tests to count releases.
var closeHandle = func(h RawHandle) error {
	return windows.CloseHandle(h)
}

// BorrowedHandle is a HANDLE that stays open for as long as the borrow is in
// use. It never closes the handle.
type BorrowedHandle struct {
	h RawHandle
}

// BorrowRawHandle borrows h.
//
// The caller asserts that h is open and remains open for as long as the
// returned value, or any copy of it, is used. Passing NULL panics.
// INVALID_HANDLE_VALUE is accepted since it doubles as the current-process
// pseudo handle.
func BorrowRawHandle(h RawHandle) BorrowedHandle {
	if h == nullHandle {
		panic("handle: BorrowRawHandle called with NULL")
	}
	return BorrowedHandle{h: h}
}

// AsRawHandle returns the borrowed handle.
func (b BorrowedHandle) AsRawHandle() RawHandle {
	return b.h
}

// AsHandle returns b itself.
func (b BorrowedHandle) AsHandle() BorrowedHandle {
	return b
}

// TryCloneToOwned duplicates the handle into a new owner with the same access.
func (b BorrowedHandle) TryCloneToOwned() (*OwnedHandle, error) {
	var dup RawHandle
	proc := windows.CurrentProcess()
	err := windows.DuplicateHandle(proc, b.h, proc, &dup, 0, false, windows.DUPLICATE_SAME_ACCESS)
	if err != nil {
		return nil, fmt.Errorf("DuplicateHandle %#x: %w", uintptr(b.h), err)
	}
	return FromRawHandle(dup), nil
}

func (b BorrowedHandle) String() string {
	return fmt.Sprintf("BorrowedHandle(%#x)", uintptr(b.h))
}

// OwnedHandle owns a HANDLE and closes it exactly once with CloseHandle.
// The zero OwnedHandle holds nothing and can be filled once with FromHandle.
// Copies share one ownership state.
type OwnedHandle struct {
	cell *ownership.Cell[RawHandle]
}

// FromRawHandle takes ownership of h.
//
// The caller asserts that h is open and that nothing else will close it.
// Passing NULL panics.
func FromRawHandle(h RawHandle) *OwnedHandle {
	if h == nullHandle {
		panic("handle: FromRawHandle called with NULL")
	}
	o := &OwnedHandle{}
	o.adopt(h)
	return o
}

func (o *OwnedHandle) adopt(h RawHandle) {
	o.cell = ownership.New("handle", h, releaseHandle)
}

// releaseHandle reads closeHandle at release time so tests can swap it.
func releaseHandle(h RawHandle) error {
	return closeHandle(h)
}

// AsHandle borrows the handle until o is closed, consumed or moved.
func (o *OwnedHandle) AsHandle() BorrowedHandle {
	return BorrowedHandle{h: o.cell.MustRaw("OwnedHandle")}
}

// AsRawHandle returns the handle without giving up ownership.
func (o *OwnedHandle) AsRawHandle() RawHandle {
	return o.cell.MustRaw("OwnedHandle")
}

// IntoRawHandle gives up ownership without closing.
func (o *OwnedHandle) IntoRawHandle() RawHandle {
	h, ok := o.cell.Take()
	if !ok {
		panic("OwnedHandle: use of a closed or consumed owner")
	}
	return h
}

// IntoHandle returns o itself.
func (o *OwnedHandle) IntoHandle() *OwnedHandle {
	return o
}

// FromHandle makes the zero OwnedHandle o take over src. Calling it on a live
// or spent owner panics.
func (o *OwnedHandle) FromHandle(src *OwnedHandle) {
	if !o.cell.Empty() {
		panic("OwnedHandle: FromHandle on an owner that is not zero")
	}
	o.adopt(src.IntoRawHandle())
}

// Move transfers ownership to a new OwnedHandle and spends o.
func (o *OwnedHandle) Move() *OwnedHandle {
	return FromRawHandle(o.IntoRawHandle())
}

// Valid reports whether o still owns a handle.
func (o *OwnedHandle) Valid() bool {
	return o != nil && o.cell.Live()
}

// TryClone duplicates the handle into a new, independent owner.
func (o *OwnedHandle) TryClone() (*OwnedHandle, error) {
	h, ok := o.cell.Raw()
	if !ok {
		return nil, ErrReleased
	}
	return BorrowedHandle{h: h}.TryCloneToOwned()
}

// Close closes the handle once; later calls return nil.
func (o *OwnedHandle) Close() error {
	if o == nil {
		return nil
	}
	released, err := o.cell.Close()
	if !released {
		return nil
	}
	if err != nil {
		return fmt.Errorf("CloseHandle: %w", err)
	}
	return nil
}

func (o *OwnedHandle) String() string {
	if o == nil {
		return "<nil>"
	}
	if h, ok := o.cell.Raw(); ok {
		return fmt.Sprintf("OwnedHandle(%#x)", uintptr(h))
	}
	return "OwnedHandle(spent)"
}

// OptionHandle is an owned handle or nothing, stored exactly like a RawHandle
// with NULL meaning nothing. The zero value is empty.
type OptionHandle struct {
	h RawHandle
}

// NoneHandle returns an empty OptionHandle.
func NoneHandle() OptionHandle {
	return OptionHandle{}
}

// SomeHandle moves owned into an OptionHandle.
func SomeHandle(owned *OwnedHandle) OptionHandle {
	return OptionHandle{h: owned.IntoRawHandle()}
}

// OptionFromRawHandle wraps a value from a foreign interface, NULL meaning
// nothing. Any other value is trusted as for FromRawHandle.
func OptionFromRawHandle(h RawHandle) OptionHandle {
	return OptionHandle{h: h}
}

func (o OptionHandle) IsSome() bool { return o.h != nullHandle }
func (o OptionHandle) IsNone() bool { return o.h == nullHandle }

// AsRawHandle returns the held handle or NULL.
func (o OptionHandle) AsRawHandle() RawHandle {
	return o.h
}

// IntoRawHandle empties o and returns what it held.
func (o *OptionHandle) IntoRawHandle() RawHandle {
	h := o.h
	o.h = nullHandle
	return h
}

// Take moves the handle out into an owner and empties o.
func (o *OptionHandle) Take() (*OwnedHandle, bool) {
	if o.IsNone() {
		return nil, false
	}
	return FromRawHandle(o.IntoRawHandle()), true
}

// Close closes the held handle, if any, and empties o.
func (o *OptionHandle) Close() error {
	if owned, ok := o.Take(); ok {
		return owned.Close()
	}
	return nil
}

func (o OptionHandle) String() string {
	if o.IsNone() {
		return "OptionHandle(none)"
	}
	return fmt.Sprintf("OptionHandle(%#x)", uintptr(o.h))
}

// OptionFileHandle is like OptionHandle for the file APIs (CreateFileW and
// friends) that report failure with INVALID_HANDLE_VALUE instead of NULL.
//
// The zero value is NOT empty; use NoneFileHandle.
type OptionFileHandle struct {
	h RawHandle
}

// NoneFileHandle returns an empty OptionFileHandle.
func NoneFileHandle() OptionFileHandle {
	return OptionFileHandle{h: windows.InvalidHandle}
}

// SomeFileHandle moves owned into an OptionFileHandle.
func SomeFileHandle(owned *OwnedHandle) OptionFileHandle {
	return OptionFileHandle{h: owned.IntoRawHandle()}
}

// OptionFromRawFileHandle wraps a value from a file API, INVALID_HANDLE_VALUE
// meaning nothing.
func OptionFromRawFileHandle(h RawHandle) OptionFileHandle {
	return OptionFileHandle{h: h}
}

func (o OptionFileHandle) IsSome() bool { return o.h != windows.InvalidHandle }
func (o OptionFileHandle) IsNone() bool { return o.h == windows.InvalidHandle }

// AsRawHandle returns the held handle or INVALID_HANDLE_VALUE.
func (o OptionFileHandle) AsRawHandle() RawHandle {
	return o.h
}

// IntoRawHandle empties o and returns what it held.
func (o *OptionFileHandle) IntoRawHandle() RawHandle {
	h := o.h
	o.h = windows.InvalidHandle
	return h
}

// Take moves the handle out into an owner and empties o.
func (o *OptionFileHandle) Take() (*OwnedHandle, bool) {
	if o.IsNone() {
		return nil, false
	}
	return FromRawHandle(o.IntoRawHandle()), true
}

// Close closes the held handle, if any, and empties o.
func (o *OptionFileHandle) Close() error {
	if owned, ok := o.Take(); ok {
		return owned.Close()
	}
	return nil
}

func (o OptionFileHandle) String() string {
	if o.IsNone() {
		return "OptionFileHandle(none)"
	}
	return fmt.Sprintf("OptionFileHandle(%#x)", uintptr(o.h))
}
