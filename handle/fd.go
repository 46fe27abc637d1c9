//go:build unix || wasip1

// File: handle/fd.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Descriptor kinds for Unix-like and WASI targets.

package handle

import (
	"fmt"

	"github.com/momentics/hioload-fd/internal/ownership"
)

// RawFd is a bare file descriptor.
type RawFd = int

// invalidFd is the sentinel used by foreign interfaces for "no descriptor".
const invalidFd RawFd = -1

// BorrowedFd is a descriptor that stays open for as long as the borrow is in
// use. It never closes the descriptor. Copies are independent borrows of the
// same descriptor and compare equal.
//
// The zero value borrows descriptor 0.
type BorrowedFd struct {
	fd RawFd
}

// BorrowRawFd borrows fd.
//
// The caller asserts that fd is open and remains open for as long as the
// returned value, or any copy of it, is used. Nothing checks this. Passing -1
// panics.
func BorrowRawFd(fd RawFd) BorrowedFd {
	if fd == invalidFd {
		panic("handle: BorrowRawFd called with -1")
	}
	return BorrowedFd{fd: fd}
}

// AsRawFd returns the borrowed descriptor.
func (b BorrowedFd) AsRawFd() RawFd {
	return b.fd
}

// AsFd returns b itself.
func (b BorrowedFd) AsFd() BorrowedFd {
	return b
}

// TryCloneToOwned duplicates the descriptor into a new owner.
func (b BorrowedFd) TryCloneToOwned() (*OwnedFd, error) {
	fd, err := dupFd(b.fd)
	if err != nil {
		return nil, fmt.Errorf("dup fd %d: %w", b.fd, err)
	}
	return FromRawFd(fd), nil
}

func (b BorrowedFd) String() string {
	return fmt.Sprintf("BorrowedFd(%d)", b.fd)
}

// OwnedFd owns a descriptor and closes it exactly once.
//
// The zero OwnedFd holds nothing and can be filled once with FromFd, so it
// can sit by value in a larger struct. Copies share one ownership state. After
// Close, IntoRawFd or Move the owner is spent and any further access to its
// descriptor panics; a spent owner cannot be filled again.
type OwnedFd struct {
	cell *ownership.Cell[RawFd]
}

// FromRawFd takes ownership of fd.
//
// The caller asserts that fd is open and that nothing else will close it.
// Passing -1 panics.
func FromRawFd(fd RawFd) *OwnedFd {
	if fd == invalidFd {
		panic("handle: FromRawFd called with -1")
	}
	o := &OwnedFd{}
	o.adopt(fd)
	return o
}

func (o *OwnedFd) adopt(fd RawFd) {
	o.cell = ownership.New("fd", fd, releaseFd)
}

// releaseFd reads closeFd at release time so tests can swap it.
func releaseFd(fd RawFd) error {
	return closeFd(fd)
}

// AsFd borrows the descriptor. The borrow is valid until o is closed,
// consumed or moved.
func (o *OwnedFd) AsFd() BorrowedFd {
	return BorrowedFd{fd: o.cell.MustRaw("OwnedFd")}
}

// AsRawFd returns the descriptor without giving up ownership.
func (o *OwnedFd) AsRawFd() RawFd {
	return o.cell.MustRaw("OwnedFd")
}

// IntoRawFd gives up ownership without closing. The caller becomes
// responsible for the descriptor.
func (o *OwnedFd) IntoRawFd() RawFd {
	fd, ok := o.cell.Take()
	if !ok {
		panic("OwnedFd: use of a closed or consumed owner")
	}
	return fd
}

// IntoFd returns o itself.
func (o *OwnedFd) IntoFd() *OwnedFd {
	return o
}

// FromFd makes the zero OwnedFd o take over src. src is spent afterwards.
// Calling it on a live or spent owner panics.
func (o *OwnedFd) FromFd(src *OwnedFd) {
	if !o.cell.Empty() {
		panic("OwnedFd: FromFd on an owner that is not zero")
	}
	o.adopt(src.IntoRawFd())
}

// Move transfers ownership to a new OwnedFd and spends o.
func (o *OwnedFd) Move() *OwnedFd {
	return FromRawFd(o.IntoRawFd())
}

// Valid reports whether o still owns a descriptor.
func (o *OwnedFd) Valid() bool {
	return o != nil && o.cell.Live()
}

// TryClone duplicates the descriptor into a new, independent owner.
func (o *OwnedFd) TryClone() (*OwnedFd, error) {
	fd, ok := o.cell.Raw()
	if !ok {
		return nil, ErrReleased
	}
	return BorrowedFd{fd: fd}.TryCloneToOwned()
}

// Close closes the descriptor. Only the first call on a live owner closes;
// later calls, and calls on a consumed owner, return nil.
func (o *OwnedFd) Close() error {
	if o == nil {
		return nil
	}
	released, err := o.cell.Close()
	if !released {
		return nil
	}
	if err != nil {
		return fmt.Errorf("close fd: %w", err)
	}
	return nil
}

func (o *OwnedFd) String() string {
	if o == nil {
		return "<nil>"
	}
	if fd, ok := o.cell.Raw(); ok {
		return fmt.Sprintf("OwnedFd(%d)", fd)
	}
	return "OwnedFd(spent)"
}

// OptionFd is an owned descriptor or nothing, stored exactly like a RawFd
// with -1 meaning nothing. It matches foreign interfaces that pass such a
// sentinel.
//
// OptionFd has no garbage-collection fallback: a Some value must be closed or
// taken. The zero value is NOT empty, since it holds descriptor 0; use NoneFd.
type OptionFd struct {
	fd RawFd
}

// NoneFd returns an empty OptionFd.
func NoneFd() OptionFd {
	return OptionFd{fd: invalidFd}
}

// SomeFd moves owned into an OptionFd.
func SomeFd(owned *OwnedFd) OptionFd {
	return OptionFd{fd: owned.IntoRawFd()}
}

// OptionFromRawFd wraps a value received from a foreign interface, with -1
// meaning nothing. For any other value the caller asserts ownership as for
// FromRawFd.
func OptionFromRawFd(fd RawFd) OptionFd {
	return OptionFd{fd: fd}
}

// IsSome reports whether a descriptor is held.
func (o OptionFd) IsSome() bool {
	return o.fd != invalidFd
}

// IsNone reports whether no descriptor is held.
func (o OptionFd) IsNone() bool {
	return o.fd == invalidFd
}

// AsRawFd returns the held descriptor or -1.
func (o OptionFd) AsRawFd() RawFd {
	return o.fd
}

// IntoRawFd empties o and returns what it held, or -1.
func (o *OptionFd) IntoRawFd() RawFd {
	fd := o.fd
	o.fd = invalidFd
	return fd
}

// Take moves the descriptor out into an owner and empties o.
func (o *OptionFd) Take() (*OwnedFd, bool) {
	if o.IsNone() {
		return nil, false
	}
	return FromRawFd(o.IntoRawFd()), true
}

// Close closes the held descriptor, if any, and empties o.
func (o *OptionFd) Close() error {
	if owned, ok := o.Take(); ok {
		return owned.Close()
	}
	return nil
}

func (o OptionFd) String() string {
	if o.IsNone() {
		return "OptionFd(none)"
	}
	return fmt.Sprintf("OptionFd(%d)", o.fd)
}
