//go:build windows

// File: handle/socket_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Winsock SOCKET kinds, released with closesocket.

package handle

import (
	"fmt"

	"golang.org/x/sys/windows"

	"github.com/momentics/hioload-fd/internal/ownership"
)

// RawSocket is a bare Winsock SOCKET.
type RawSocket = windows.Handle

// invalidSocket is INVALID_SOCKET.
const invalidSocket = RawSocket(^uintptr(0))

// closeSocket is swapped by tests to count releases.
var closeSocket = func(s RawSocket) error {
	return windows.Closesocket(s)
}

// BorrowedSocket is a socket that stays open for as long as the borrow is in
// use. It never closes the socket.
type BorrowedSocket struct {
	s RawSocket
}

// BorrowRawSocket borrows s.
//
// The caller asserts that s is an open socket that remains open for as long
// as the returned value, or any copy of it, is used. Passing INVALID_SOCKET
// panics.
func BorrowRawSocket(s RawSocket) BorrowedSocket {
	if s == invalidSocket {
		panic("handle: BorrowRawSocket called with INVALID_SOCKET")
	}
	return BorrowedSocket{s: s}
}

// AsRawSocket returns the borrowed socket.
func (b BorrowedSocket) AsRawSocket() RawSocket {
	return b.s
}

// AsSocket returns b itself.
func (b BorrowedSocket) AsSocket() BorrowedSocket {
	return b
}

// TryCloneToOwned duplicates the socket through WSADuplicateSocket.
func (b BorrowedSocket) TryCloneToOwned() (*OwnedSocket, error) {
	var info windows.WSAProtocolInfo
	if err := windows.WSADuplicateSocket(b.s, windows.GetCurrentProcessId(), &info); err != nil {
		return nil, fmt.Errorf("WSADuplicateSocket %#x: %w", uintptr(b.s), err)
	}
	s, err := windows.WSASocket(info.AddressFamily, info.SocketType, info.Protocol, &info, 0,
		windows.WSA_FLAG_OVERLAPPED|windows.WSA_FLAG_NO_HANDLE_INHERIT)
	if err != nil {
		return nil, fmt.Errorf("WSASocket: %w", err)
	}
	return FromRawSocket(s), nil
}

func (b BorrowedSocket) String() string {
	return fmt.Sprintf("BorrowedSocket(%#x)", uintptr(b.s))
}

// OwnedSocket owns a socket and closes it exactly once with closesocket.
// The zero OwnedSocket holds nothing and can be filled once with FromSocket.
// Copies share one ownership state.
type OwnedSocket struct {
	cell *ownership.Cell[RawSocket]
}

// FromRawSocket takes ownership of s.
//
// The caller asserts that s is an open socket and that nothing else will
// close it. Passing INVALID_SOCKET panics.
func FromRawSocket(s RawSocket) *OwnedSocket {
	if s == invalidSocket {
		panic("handle: FromRawSocket called with INVALID_SOCKET")
	}
	o := &OwnedSocket{}
	o.adopt(s)
	return o
}

func (o *OwnedSocket) adopt(s RawSocket) {
	o.cell = ownership.New("socket", s, releaseSocket)
}

// releaseSocket reads closeSocket at release time so tests can swap it.
func releaseSocket(s RawSocket) error {
	return closeSocket(s)
}

// AsSocket borrows the socket until o is closed, consumed or moved.
func (o *OwnedSocket) AsSocket() BorrowedSocket {
	return BorrowedSocket{s: o.cell.MustRaw("OwnedSocket")}
}

// AsRawSocket returns the socket without giving up ownership.
func (o *OwnedSocket) AsRawSocket() RawSocket {
	return o.cell.MustRaw("OwnedSocket")
}

// IntoRawSocket gives up ownership without closing.
func (o *OwnedSocket) IntoRawSocket() RawSocket {
	s, ok := o.cell.Take()
	if !ok {
		panic("OwnedSocket: use of a closed or consumed owner")
	}
	return s
}

// IntoSocket returns o itself.
func (o *OwnedSocket) IntoSocket() *OwnedSocket {
	return o
}

// FromSocket makes the zero OwnedSocket o take over src. Calling it on a live
// or spent owner panics.
func (o *OwnedSocket) FromSocket(src *OwnedSocket) {
	if !o.cell.Empty() {
		panic("OwnedSocket: FromSocket on an owner that is not zero")
	}
	o.adopt(src.IntoRawSocket())
}

// Move transfers ownership to a new OwnedSocket and spends o.
func (o *OwnedSocket) Move() *OwnedSocket {
	return FromRawSocket(o.IntoRawSocket())
}

// Valid reports whether o still owns a socket.
func (o *OwnedSocket) Valid() bool {
	return o != nil && o.cell.Live()
}

// TryClone duplicates the socket into a new, independent owner.
func (o *OwnedSocket) TryClone() (*OwnedSocket, error) {
	s, ok := o.cell.Raw()
	if !ok {
		return nil, ErrReleased
	}
	return BorrowedSocket{s: s}.TryCloneToOwned()
}

// Close closes the socket once; later calls return nil.
func (o *OwnedSocket) Close() error {
	if o == nil {
		return nil
	}
	released, err := o.cell.Close()
	if !released {
		return nil
	}
	if err != nil {
		return fmt.Errorf("closesocket: %w", err)
	}
	return nil
}

func (o *OwnedSocket) String() string {
	if o == nil {
		return "<nil>"
	}
	if s, ok := o.cell.Raw(); ok {
		return fmt.Sprintf("OwnedSocket(%#x)", uintptr(s))
	}
	return "OwnedSocket(spent)"
}

// OptionSocket is an owned socket or nothing, stored exactly like a RawSocket
// with INVALID_SOCKET meaning nothing. The zero value is NOT empty; use
// NoneSocket.
type OptionSocket struct {
	s RawSocket
}

// NoneSocket returns an empty OptionSocket.
func NoneSocket() OptionSocket {
	return OptionSocket{s: invalidSocket}
}

// SomeSocket moves owned into an OptionSocket.
func SomeSocket(owned *OwnedSocket) OptionSocket {
	return OptionSocket{s: owned.IntoRawSocket()}
}

// OptionFromRawSocket wraps a value from a foreign interface, INVALID_SOCKET
// meaning nothing.
func OptionFromRawSocket(s RawSocket) OptionSocket {
	return OptionSocket{s: s}
}

func (o OptionSocket) IsSome() bool { return o.s != invalidSocket }
func (o OptionSocket) IsNone() bool { return o.s == invalidSocket }

// AsRawSocket returns the held socket or INVALID_SOCKET.
func (o OptionSocket) AsRawSocket() RawSocket {
	return o.s
}

// IntoRawSocket empties o and returns what it held.
func (o *OptionSocket) IntoRawSocket() RawSocket {
	s := o.s
	o.s = invalidSocket
	return s
}

// Take moves the socket out into an owner and empties o.
func (o *OptionSocket) Take() (*OwnedSocket, bool) {
	if o.IsNone() {
		return nil, false
	}
	return FromRawSocket(o.IntoRawSocket()), true
}

// Close closes the held socket, if any, and empties o.
func (o *OptionSocket) Close() error {
	if owned, ok := o.Take(); ok {
		return owned.Close()
	}
	return nil
}

func (o OptionSocket) String() string {
	if o.IsNone() {
		return "OptionSocket(none)"
	}
	return fmt.Sprintf("OptionSocket(%#x)", uintptr(o.s))
}
