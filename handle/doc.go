// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package handle defines owned, borrowed and raw kinds for operating-system
// resources: descriptors on Unix and WASI, handles and sockets on Windows.
//
// A Raw value is a bare number with no guarantees. A Borrowed value promises
// that the resource stays open for as long as the borrow is used, and never
// closes it. An Owned value is the single party responsible for closing the
// resource, which happens exactly once: through Close, or through the garbage
// collector if the owner is dropped while still open.
//
// Turning a Raw value into a Borrowed or Owned one (BorrowRawFd, FromRawFd and
// their Windows counterparts) is a trust boundary. The caller asserts that the
// value denotes an open resource; nothing can verify that without I/O.
package handle
