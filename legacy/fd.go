//go:build unix || wasip1

// File: legacy/fd.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Raw descriptor capabilities and shims between them and the ownership model.

package legacy

import (
	"github.com/momentics/hioload-fd/api"
	"github.com/momentics/hioload-fd/handle"
)

// AsRawFd exposes a descriptor with no lifetime attached.
type AsRawFd interface {
	AsRawFd() handle.RawFd
}

// IntoRawFd hands a descriptor over with no ownership attached.
type IntoRawFd interface {
	IntoRawFd() handle.RawFd
}

// FromRawFd is satisfied by *T when a zero T can be initialised from a raw
// descriptor it will own.
type FromRawFd[T any] interface {
	*T
	FromRawFd(fd handle.RawFd)
}

// FdView adapts a raw-only value to api.AsFd.
type FdView struct {
	src AsRawFd
}

// ViewFd trusts src to keep its descriptor open while the view is used.
func ViewFd(src AsRawFd) FdView {
	return FdView{src: src}
}

// AsFd borrows the descriptor reported by the wrapped value.
func (v FdView) AsFd() handle.BorrowedFd {
	return handle.BorrowRawFd(v.src.AsRawFd())
}

// OwnFd takes the descriptor handed over by src into an owner. The caller
// asserts src really gave up the descriptor.
func OwnFd(src IntoRawFd) *handle.OwnedFd {
	return handle.FromRawFd(src.IntoRawFd())
}

// RawFromFd consumes src for a consumer that only accepts raw descriptors.
// That consumer becomes responsible for closing it.
func RawFromFd(src api.IntoFd) handle.RawFd {
	return src.IntoFd().IntoRawFd()
}

// NewFromRawFd builds a T through its raw initialiser.
func NewFromRawFd[T any, PT FromRawFd[T]](fd handle.RawFd) *T {
	v := new(T)
	PT(v).FromRawFd(fd)
	return v
}

// NewFromFdViaRaw feeds an owned descriptor to a raw-only initialiser.
func NewFromFdViaRaw[T any, PT FromRawFd[T]](owned *handle.OwnedFd) *T {
	return NewFromRawFd[T, PT](owned.IntoRawFd())
}

var (
	_ api.AsFd  = FdView{}
	_ AsRawFd   = handle.BorrowedFd{}
	_ AsRawFd   = (*handle.OwnedFd)(nil)
	_ IntoRawFd = (*handle.OwnedFd)(nil)
)
