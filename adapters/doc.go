// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package adapters gives platform-independent names to the handle kinds and
// capabilities, so code written against "file-like" and "socket-like"
// resources compiles unchanged on Unix, WASI and Windows.
//
// The names are type aliases chosen at build time: on Unix and WASI both
// file-like and socket-like resources are descriptors; on Windows file-like
// resources are HANDLEs and socket-like resources are SOCKETs. Any type that
// implements the platform capability already satisfies the portable one. The
// forwarding functions add no wrapping.
//
// The package also bridges the standard library: scoped borrows of *os.File
// and syscall.Conn values, and ownership transfer between *os.File and owned
// kinds.
package adapters
