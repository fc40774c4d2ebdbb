// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package tee

import (
	"github.com/usbarmory/tamago/riscv"
	"github.com/usbarmory/tamago/soc/sifive/fu540"

	"github.com/usbarmory/GoTEE/monitor"

	"github.com/usbarmory/GoTEE-lockdown/pmx"
)

// configurePMP maps the applet context memory using the permission
// table slots which the boot lockdown leaves free for the monitor.
//
// Locked boot-stage entries keep matching priority over these slots
// for the ranges they cover, the grant below only refines what the
// active scenario already allows.
func configurePMP(ctx *monitor.ExecCtx, i int) (err error) {
	if i < pmx.MonitorSlot {
		i = pmx.MonitorSlot
	}

	if err = fu540.RV64.WritePMP(i, uint64(ctx.Memory.Start), false, false, false, riscv.PMP_CFG_A_OFF, false); err != nil {
		return
	}

	if err = fu540.RV64.WritePMP(i+1, uint64(ctx.Memory.Start)+uint64(ctx.Memory.Size), true, true, true, riscv.PMP_CFG_A_TOR, false); err != nil {
		return
	}

	return
}
