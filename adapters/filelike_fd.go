//go:build unix || wasip1

// File: adapters/filelike_fd.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Unix and WASI: files and sockets are both descriptors.

package adapters

import (
	"github.com/momentics/hioload-fd/api"
	"github.com/momentics/hioload-fd/handle"
)

type (
	RawFilelike      = handle.RawFd
	BorrowedFilelike = handle.BorrowedFd
	OwnedFilelike    = handle.OwnedFd
	OptionFilelike   = handle.OptionFd

	RawSocketlike      = handle.RawFd
	BorrowedSocketlike = handle.BorrowedFd
	OwnedSocketlike    = handle.OwnedFd
	OptionSocketlike   = handle.OptionFd
)

type (
	AsFilelike     = api.AsFd
	IntoFilelike   = api.IntoFd
	AsSocketlike   = api.AsFd
	IntoSocketlike = api.IntoFd
)

// FromFilelike is satisfied by *T when T can be built around an owned
// file-like resource.
type FromFilelike[T any] interface {
	api.FromFd[T]
}

// FromSocketlike is satisfied by *T when T can be built around an owned
// socket-like resource.
type FromSocketlike[T any] interface {
	api.FromFd[T]
}

// BorrowFilelike borrows the file-like resource of x.
func BorrowFilelike(x AsFilelike) BorrowedFilelike {
	return x.AsFd()
}

// IntoOwnedFilelike consumes x into its owned file-like resource.
func IntoOwnedFilelike(x IntoFilelike) *OwnedFilelike {
	return x.IntoFd()
}

// FromOwnedFilelike builds a T around owned.
func FromOwnedFilelike[T any, PT FromFilelike[T]](owned *OwnedFilelike) *T {
	v := new(T)
	PT(v).FromFd(owned)
	return v
}

// FromIntoFilelike builds a T from anything convertible into an owned
// file-like resource.
func FromIntoFilelike[T any, PT FromFilelike[T]](src IntoFilelike) *T {
	return FromOwnedFilelike[T, PT](src.IntoFd())
}

// BorrowSocketlike borrows the socket-like resource of x.
func BorrowSocketlike(x AsSocketlike) BorrowedSocketlike {
	return x.AsFd()
}

// IntoOwnedSocketlike consumes x into its owned socket-like resource.
func IntoOwnedSocketlike(x IntoSocketlike) *OwnedSocketlike {
	return x.IntoFd()
}

// FromOwnedSocketlike builds a T around owned.
func FromOwnedSocketlike[T any, PT FromSocketlike[T]](owned *OwnedSocketlike) *T {
	v := new(T)
	PT(v).FromFd(owned)
	return v
}

// FromIntoSocketlike builds a T from anything convertible into an owned
// socket-like resource.
func FromIntoSocketlike[T any, PT FromSocketlike[T]](src IntoSocketlike) *T {
	return FromOwnedSocketlike[T, PT](src.IntoFd())
}
