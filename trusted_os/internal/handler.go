// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package tee

import (
	"github.com/usbarmory/GoTEE/monitor"
	"github.com/usbarmory/GoTEE/syscall"

	"github.com/usbarmory/GoTEE-lockdown/util"
)

// goHandler overrides the GoTEE default handler to avoid interleaved
// logs, as the monitor and applet contexts log simultaneously.
func goHandler(ctx *monitor.ExecCtx) (err error) {
	switch {
	case ctx.A0() == syscall.SYS_WRITE:
		util.BufferedStdoutLog(byte(ctx.A1()), false)
	default:
		return monitor.SecureHandler(ctx)
	}

	return
}
