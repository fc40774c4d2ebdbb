// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package tee

import (
	"github.com/usbarmory/tamago/soc/sifive/fu540"

	"github.com/usbarmory/GoTEE-lockdown/pmx"
	"github.com/usbarmory/GoTEE-lockdown/util"
)

// RPC is the receiver for applet RPCs over system calls.
type RPC struct{}

// Echo returns a response with the input string.
func (r *RPC) Echo(in string, out *string) error {
	*out = in
	return nil
}

// Lockdown reports the active memory protection state.
func (r *RPC) Lockdown(_ bool, out *util.LockdownStatus) error {
	status := util.LockdownStatus{
		Scenario: Scenario.String(),
	}

	for i := 0; i < pmx.TableSize; i++ {
		_, _, _, _, _, l, err := fu540.RV64.ReadPMP(i)

		if err != nil {
			return err
		}

		if l {
			status.Locked += 1
		}
	}

	*out = status
	return nil
}
