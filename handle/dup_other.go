//go:build unix && !(linux || darwin || freebsd || netbsd || openbsd || dragonfly || solaris || illumos)

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fallback for Unix ports without F_DUPFD_CLOEXEC. The close-on-exec flag is
// set after the dup, so a concurrent fork may inherit the copy.

package handle

import "golang.org/x/sys/unix"

func dupFd(fd RawFd) (RawFd, error) {
	nfd, err := unix.Dup(fd)
	if err != nil {
		return invalidFd, err
	}
	unix.CloseOnExec(nfd)
	return nfd, nil
}
