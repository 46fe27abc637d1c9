//go:build unix

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package handle

import "golang.org/x/sys/unix"

// closeFd is swapped by tests to count releases.
var closeFd = func(fd RawFd) error {
	return unix.Close(fd)
}
