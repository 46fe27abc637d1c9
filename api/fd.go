//go:build unix || wasip1

// File: api/fd.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Descriptor capabilities.

package api

import "github.com/momentics/hioload-fd/handle"

// AsFd lends out a descriptor. The borrow stays valid until the implementer
// is closed, consumed or moved.
type AsFd interface {
	AsFd() handle.BorrowedFd
}

// IntoFd hands over a descriptor, consuming the implementer. It must not
// close the descriptor.
type IntoFd interface {
	IntoFd() *handle.OwnedFd
}

// FromFd is satisfied by *T when a zero T can take over an owned descriptor.
// After FromFd the T is responsible for closing it.
type FromFd[T any] interface {
	*T
	FromFd(owned *handle.OwnedFd)
}

// NewFromFd builds a T around owned.
func NewFromFd[T any, PT FromFd[T]](owned *handle.OwnedFd) *T {
	v := new(T)
	PT(v).FromFd(owned)
	return v
}

// FromIntoFd builds a T from anything that converts into an owned descriptor.
func FromIntoFd[T any, PT FromFd[T]](src IntoFd) *T {
	return NewFromFd[T, PT](src.IntoFd())
}

var (
	_ AsFd   = handle.BorrowedFd{}
	_ AsFd   = (*handle.OwnedFd)(nil)
	_ IntoFd = (*handle.OwnedFd)(nil)
	_        = NewFromFd[handle.OwnedFd, *handle.OwnedFd]
)
