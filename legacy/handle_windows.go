//go:build windows

// File: legacy/handle_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package legacy

import (
	"github.com/momentics/hioload-fd/api"
	"github.com/momentics/hioload-fd/handle"
)

type AsRawHandle interface {
	AsRawHandle() handle.RawHandle
}

type IntoRawHandle interface {
	IntoRawHandle() handle.RawHandle
}

type FromRawHandle[T any] interface {
	*T
	FromRawHandle(h handle.RawHandle)
}

type AsRawSocket interface {
	AsRawSocket() handle.RawSocket
}

type IntoRawSocket interface {
	IntoRawSocket() handle.RawSocket
}

type FromRawSocket[T any] interface {
	*T
	FromRawSocket(s handle.RawSocket)
}

// HandleView adapts a raw-only value to api.AsHandle.
type HandleView struct {
	src AsRawHandle
}

// ViewHandle trusts src to keep its HANDLE open while the view is used.
func ViewHandle(src AsRawHandle) HandleView {
	return HandleView{src: src}
}

func (v HandleView) AsHandle() handle.BorrowedHandle {
	return handle.BorrowRawHandle(v.src.AsRawHandle())
}

// SocketView adapts a raw-only value to api.AsSocket.
type SocketView struct {
	src AsRawSocket
}

// ViewSocket trusts src to keep its SOCKET open while the view is used.
func ViewSocket(src AsRawSocket) SocketView {
	return SocketView{src: src}
}

func (v SocketView) AsSocket() handle.BorrowedSocket {
	return handle.BorrowRawSocket(v.src.AsRawSocket())
}

// OwnHandle takes the HANDLE handed over by src into an owner.
func OwnHandle(src IntoRawHandle) *handle.OwnedHandle {
	return handle.FromRawHandle(src.IntoRawHandle())
}

// OwnSocket takes the SOCKET handed over by src into an owner.
func OwnSocket(src IntoRawSocket) *handle.OwnedSocket {
	return handle.FromRawSocket(src.IntoRawSocket())
}

// RawFromHandle consumes src for a raw-only consumer.
func RawFromHandle(src api.IntoHandle) handle.RawHandle {
	return src.IntoHandle().IntoRawHandle()
}

// RawFromSocket consumes src for a raw-only consumer.
func RawFromSocket(src api.IntoSocket) handle.RawSocket {
	return src.IntoSocket().IntoRawSocket()
}

// NewFromRawHandle builds a T through its raw initialiser.
func NewFromRawHandle[T any, PT FromRawHandle[T]](h handle.RawHandle) *T {
	v := new(T)
	PT(v).FromRawHandle(h)
	return v
}

// NewFromRawSocket builds a T through its raw initialiser.
func NewFromRawSocket[T any, PT FromRawSocket[T]](s handle.RawSocket) *T {
	v := new(T)
	PT(v).FromRawSocket(s)
	return v
}

var (
	_ api.AsHandle  = HandleView{}
	_ api.AsSocket  = SocketView{}
	_ AsRawHandle   = (*handle.OwnedHandle)(nil)
	_ IntoRawHandle = (*handle.OwnedHandle)(nil)
	_ AsRawSocket   = (*handle.OwnedSocket)(nil)
	_ IntoRawSocket = (*handle.OwnedSocket)(nil)
)
