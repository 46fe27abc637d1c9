//go:build windows

// File: api/socket_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

import "github.com/momentics/hioload-fd/handle"

// AsSocket lends out a SOCKET until the implementer is closed, consumed or
// moved.
type AsSocket interface {
	AsSocket() handle.BorrowedSocket
}

// IntoSocket hands over a SOCKET without closing it.
type IntoSocket interface {
	IntoSocket() *handle.OwnedSocket
}

// FromSocket is satisfied by *T when a zero T can take over an owned SOCKET.
type FromSocket[T any] interface {
	*T
	FromSocket(owned *handle.OwnedSocket)
}

// NewFromSocket builds a T around owned.
func NewFromSocket[T any, PT FromSocket[T]](owned *handle.OwnedSocket) *T {
	v := new(T)
	PT(v).FromSocket(owned)
	return v
}

// FromIntoSocket builds a T from anything that converts into an owned SOCKET.
func FromIntoSocket[T any, PT FromSocket[T]](src IntoSocket) *T {
	return NewFromSocket[T, PT](src.IntoSocket())
}

var (
	_ AsSocket   = handle.BorrowedSocket{}
	_ AsSocket   = (*handle.OwnedSocket)(nil)
	_ IntoSocket = (*handle.OwnedSocket)(nil)
	_            = NewFromSocket[handle.OwnedSocket, *handle.OwnedSocket]
)
