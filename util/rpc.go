// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package util

// LockdownStatus represents the memory protection state reported by
// the monitor to the applet.
type LockdownStatus struct {
	// Scenario is the active configuration scenario
	Scenario string
	// Locked counts the locked permission table entries
	Locked int
}
