//go:build unix || wasip1

// File: fake/rawonly_fd.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// RawOnly predates the ownership model: it only speaks raw descriptors.

package fake

import "github.com/momentics/hioload-fd/handle"

// RawOnly holds a raw descriptor and records what was done with it.
type RawOnly struct {
	fd       handle.RawFd
	released bool
}

// NewRawOnly wraps fd without any ownership tracking.
func NewRawOnly(fd handle.RawFd) *RawOnly {
	return &RawOnly{fd: fd}
}

func (r *RawOnly) AsRawFd() handle.RawFd {
	return r.fd
}

// IntoRawFd hands the descriptor out. The RawOnly must not be used after.
func (r *RawOnly) IntoRawFd() handle.RawFd {
	r.released = true
	return r.fd
}

func (r *RawOnly) FromRawFd(fd handle.RawFd) {
	r.fd = fd
	r.released = false
}

// HandedOver reports whether IntoRawFd was called.
func (r *RawOnly) HandedOver() bool {
	return r.released
}
