//go:build windows

// File: api/handle_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

import "github.com/momentics/hioload-fd/handle"

// AsHandle lends out a HANDLE until the implementer is closed, consumed or
// moved.
type AsHandle interface {
	AsHandle() handle.BorrowedHandle
}

// IntoHandle hands over a HANDLE without closing it.
type IntoHandle interface {
	IntoHandle() *handle.OwnedHandle
}

// FromHandle is satisfied by *T when a zero T can take over an owned HANDLE.
type FromHandle[T any] interface {
	*T
	FromHandle(owned *handle.OwnedHandle)
}

// NewFromHandle builds a T around owned.
func NewFromHandle[T any, PT FromHandle[T]](owned *handle.OwnedHandle) *T {
	v := new(T)
	PT(v).FromHandle(owned)
	return v
}

// FromIntoHandle builds a T from anything that converts into an owned HANDLE.
func FromIntoHandle[T any, PT FromHandle[T]](src IntoHandle) *T {
	return NewFromHandle[T, PT](src.IntoHandle())
}

var (
	_ AsHandle   = handle.BorrowedHandle{}
	_ AsHandle   = (*handle.OwnedHandle)(nil)
	_ IntoHandle = (*handle.OwnedHandle)(nil)
	_            = NewFromHandle[handle.OwnedHandle, *handle.OwnedHandle]
)
