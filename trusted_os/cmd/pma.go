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

	"github.com/usbarmory/GoTEE-lockdown/pma"
	"github.com/usbarmory/GoTEE-lockdown/pmx"
	"github.com/usbarmory/GoTEE-lockdown/trusted_os/internal"
)

func init() {
	Add(Cmd{
		Name: "pma",
		Help: "display the PMA attribute table",
		Fn:   pmaDump,
	})
}

func pmaDump(_ *term.Terminal, _ []string) (res string, err error) {
	var buf bytes.Buffer

	for i := 0; i < pma.Entries; i++ {
		addr, r, w, x, c, a, l, err := tee.PMA.ReadPMA(i)

		if err != nil {
			return "", err
		}

		attr := "deny"

		if r || w || x {
			attr = "allow"
		}

		buf.WriteString(fmt.Sprintf("PMA:%.2d addr:%#.8x %-5s %-5s cache:%v lock:%v\n",
			i, addr, pmx.Mode(a), attr, c, l))
	}

	return buf.String(), nil
}
