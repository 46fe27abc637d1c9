// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package handle

import "fmt"

// Errors returned by the few handle operations that touch the OS.
var (
	ErrNotSupported = fmt.Errorf("operation not supported on this platform")
	ErrReleased     = fmt.Errorf("owner already closed or consumed")
)
