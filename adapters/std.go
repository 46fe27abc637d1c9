//go:build unix || windows

// File: adapters/std.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bridges between the standard library's file and connection types and the
// owned and borrowed kinds.

package adapters

import (
	"fmt"
	"io"
	"os"
	"syscall"
)

// WithBorrowedFile lends f's resource to fn. The borrow is valid only for the
// duration of fn and must not be retained.
func WithBorrowedFile(f *os.File, fn func(BorrowedFilelike) error) error {
	return withRawConn(f, borrowFilelikeRaw, fn)
}

// WithBorrowedConn lends the socket behind c, typically a *net.TCPConn or
// *net.TCPListener, to fn for the duration of the call.
func WithBorrowedConn(c syscall.Conn, fn func(BorrowedSocketlike) error) error {
	return withRawConn(c, borrowSocketlikeRaw, fn)
}

func withRawConn[B any](c syscall.Conn, borrow func(uintptr) B, fn func(B) error) error {
	rc, err := c.SyscallConn()
	if err != nil {
		return fmt.Errorf("syscall conn: %w", err)
	}
	var fnErr error
	if err := rc.Control(func(raw uintptr) {
		fnErr = fn(borrow(raw))
	}); err != nil {
		return fmt.Errorf("raw conn control: %w", err)
	}
	return fnErr
}

// OwnedFromFile moves f's resource into an owner. The standard library does
// not let go of a descriptor it owns, so the resource is duplicated and f is
// closed.
func OwnedFromFile(f *os.File) (*OwnedFilelike, error) {
	var owned *OwnedFilelike
	err := WithBorrowedFile(f, func(b BorrowedFilelike) (err error) {
		owned, err = b.TryCloneToOwned()
		return err
	})
	if err != nil {
		return nil, err
	}
	if err := f.Close(); err != nil {
		_ = owned.Close()
		return nil, fmt.Errorf("close %s: %w", f.Name(), err)
	}
	return owned, nil
}

// SocketConn is a connection or listener exposing its socket.
type SocketConn interface {
	syscall.Conn
	io.Closer
}

// OwnedFromConn moves the socket behind c into an owner, duplicating it and
// closing c.
func OwnedFromConn(c SocketConn) (*OwnedSocketlike, error) {
	var owned *OwnedSocketlike
	err := WithBorrowedConn(c, func(b BorrowedSocketlike) (err error) {
		owned, err = b.TryCloneToOwned()
		return err
	})
	if err != nil {
		return nil, err
	}
	if err := c.Close(); err != nil {
		_ = owned.Close()
		return nil, fmt.Errorf("close conn: %w", err)
	}
	return owned, nil
}

// IntoFile consumes owned into an *os.File, which takes over closing it.
func IntoFile(owned *OwnedFilelike, name string) *os.File {
	return os.NewFile(intoRawFilelike(owned), name)
}
