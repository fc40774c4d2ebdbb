// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"fmt"

	"golang.org/x/term"

	"github.com/usbarmory/GoTEE-lockdown/mem"
	"github.com/usbarmory/GoTEE-lockdown/pmx"
	"github.com/usbarmory/GoTEE-lockdown/trusted_os/internal"
)

func init() {
	Add(Cmd{
		Name: "lockdown",
		Help: "display the active lockdown scenario",
		Fn:   lockdownCmd,
	})

	Add(Cmd{
		Name: "dbg",
		Help: "display the debug module status",
		Fn:   dbgCmd,
	})
}

func lockdownCmd(_ *term.Terminal, _ []string) (res string, err error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("scenario: %s\n", tee.Scenario))
	buf.WriteString(fmt.Sprintf("text end: %#.8x\n", mem.TextEnd()))

	t, n := pmx.AttrTable(mem.Protection())

	buf.WriteString(fmt.Sprintf("\nattribute table (%d entries):\n", n))

	for i, e := range t[:n] {
		buf.WriteString(fmt.Sprintf("  %.2d %s\n", i, e))
	}

	return buf.String(), nil
}

func dbgCmd(_ *term.Terminal, _ []string) (res string, err error) {
	if mem.DebuggerAttached() {
		return "debugger: attached", nil
	}

	return "debugger: detached", nil
}
