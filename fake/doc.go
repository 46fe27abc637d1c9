// Package fake
// Author: momentics <momentics@gmail.com>
//
// Test doubles for the capability interfaces: an owning wrapper implementing
// every capability, a read-only view implementing only the borrow capability,
// and a raw-only type in the old style for exercising package legacy.

package fake
