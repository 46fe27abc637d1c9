//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly || solaris || illumos

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package handle

import "golang.org/x/sys/unix"

// dupFd duplicates fd with close-on-exec set atomically.
func dupFd(fd RawFd) (RawFd, error) {
	return unix.FcntlInt(uintptr(fd), unix.F_DUPFD_CLOEXEC, 0)
}
