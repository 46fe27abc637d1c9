// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package ownership holds the release-exactly-once state shared by every owned
// handle kind, the garbage-collection fallback for owners dropped without
// Close, and the logger those paths report through.
package ownership
