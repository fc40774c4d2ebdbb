// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"

	"golang.org/x/term"

	"github.com/usbarmory/tamago/soc/sifive/fu540"

	"github.com/usbarmory/GoTEE-lockdown/pmx"
)

func init() {
	Add(Cmd{
		Name: "pmp",
		Help: "display the PMP permission table",
		Fn:   pmpDump,
	})

	Add(Cmd{
		Name:    "pmp ",
		Args:    1,
		Pattern: regexp.MustCompile(`^pmp (\d+)$`),
		Syntax:  "<index>",
		Help:    "read a PMP entry",
		Fn:      pmpRead,
	})
}

func pmpEntry(i int) (res string, err error) {
	addr, r, w, x, a, l, err := fu540.RV64.ReadPMP(i)

	if err != nil {
		return
	}

	perm := "---"

	if r || w || x {
		flag := func(set bool, c string) string {
			if set {
				return c
			}
			return "-"
		}

		perm = flag(r, "r") + flag(w, "w") + flag(x, "x")
	}

	return fmt.Sprintf("PMP:%.2d addr:%#.8x %-5s %s lock:%v", i, addr, pmx.Mode(a), perm, l), nil
}

func pmpRead(_ *term.Terminal, arg []string) (res string, err error) {
	i, err := strconv.ParseUint(arg[0], 10, 8)

	if err != nil {
		return "", fmt.Errorf("invalid index, %v", err)
	}

	if i >= pmx.TableSize {
		return "", fmt.Errorf("index out of range")
	}

	return pmpEntry(int(i))
}

func pmpDump(_ *term.Terminal, _ []string) (res string, err error) {
	var buf bytes.Buffer

	for i := 0; i < pmx.TableSize; i++ {
		s, err := pmpEntry(i)

		if err != nil {
			return "", err
		}

		buf.WriteString(s + "\n")
	}

	return buf.String(), nil
}
