//go:build windows

// File: adapters/filelike_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Windows: file-like resources are HANDLEs, socket-like resources are SOCKETs.
// The two close differently, so a type wanting both implements both sets of
// capabilities explicitly.

package adapters

import (
	"github.com/momentics/hioload-fd/api"
	"github.com/momentics/hioload-fd/handle"
)

type (
	RawFilelike      = handle.RawHandle
	BorrowedFilelike = handle.BorrowedHandle
	OwnedFilelike    = handle.OwnedHandle
	OptionFilelike   = handle.OptionFileHandle

	RawSocketlike      = handle.RawSocket
	BorrowedSocketlike = handle.BorrowedSocket
	OwnedSocketlike    = handle.OwnedSocket
	OptionSocketlike   = handle.OptionSocket
)

type (
	AsFilelike     = api.AsHandle
	IntoFilelike   = api.IntoHandle
	AsSocketlike   = api.AsSocket
	IntoSocketlike = api.IntoSocket
)

// FromFilelike is satisfied by *T when T can be built around an owned
// file-like resource.
type FromFilelike[T any] interface {
	api.FromHandle[T]
}

// FromSocketlike is satisfied by *T when T can be built around an owned
// socket-like resource.
type FromSocketlike[T any] interface {
	api.FromSocket[T]
}

// BorrowFilelike borrows the file-like resource of x.
func BorrowFilelike(x AsFilelike) BorrowedFilelike {
	return x.AsHandle()
}

// IntoOwnedFilelike consumes x into its owned file-like resource.
func IntoOwnedFilelike(x IntoFilelike) *OwnedFilelike {
	return x.IntoHandle()
}

// FromOwnedFilelike builds a T around owned.
func FromOwnedFilelike[T any, PT FromFilelike[T]](owned *OwnedFilelike) *T {
	v := new(T)
	PT(v).FromHandle(owned)
	return v
}

// FromIntoFilelike builds a T from anything convertible into an owned
// file-like resource.
func FromIntoFilelike[T any, PT FromFilelike[T]](src IntoFilelike) *T {
	return FromOwnedFilelike[T, PT](src.IntoHandle())
}

// BorrowSocketlike borrows the socket-like resource of x.
func BorrowSocketlike(x AsSocketlike) BorrowedSocketlike {
	return x.AsSocket()
}

// IntoOwnedSocketlike consumes x into its owned socket-like resource.
func IntoOwnedSocketlike(x IntoSocketlike) *OwnedSocketlike {
	return x.IntoSocket()
}

// FromOwnedSocketlike builds a T around owned.
func FromOwnedSocketlike[T any, PT FromSocketlike[T]](owned *OwnedSocketlike) *T {
	v := new(T)
	PT(v).FromSocket(owned)
	return v
}

// FromIntoSocketlike builds a T from anything convertible into an owned
// socket-like resource.
func FromIntoSocketlike[T any, PT FromSocketlike[T]](src IntoSocketlike) *T {
	return FromOwnedSocketlike[T, PT](src.IntoSocket())
}
