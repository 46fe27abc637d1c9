//go:build wasip1

// File: handle/fd_wasip1.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// WASI preview 1 treats files and sockets alike as descriptors. There is no
// dup in the preview 1 interface.

package handle

import "syscall"

var closeFd = func(fd RawFd) error {
	return syscall.Close(fd)
}

func dupFd(RawFd) (RawFd, error) {
	return invalidFd, ErrNotSupported
}
