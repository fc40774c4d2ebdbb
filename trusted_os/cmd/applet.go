// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package cmd

import (
	"golang.org/x/term"

	"github.com/usbarmory/GoTEE-lockdown/trusted_os/internal"
)

func init() {
	Add(Cmd{
		Name: "applet",
		Help: "load and run the embedded applet",
		Fn:   appletCmd,
	})
}

func appletCmd(_ *term.Terminal, _ []string) (res string, err error) {
	err = tee.Applet()
	return
}
