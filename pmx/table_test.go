// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package pmx_test

import (
	"github.com/usbarmory/GoTEE-lockdown/mem"
	"github.com/usbarmory/GoTEE-lockdown/pmx"
)

// span is a resolved table entry, following the hardware matching
// rules: a TOR entry spans from the previous entry address image, a
// NAPOT entry spans its decoded range, Off entries only set a
// boundary.
type span struct {
	start, end uint64
	perm       pmx.Perm
	lock       bool
	cache      bool
}

func spans(t [pmx.TableSize]pmx.Entry) (s []span) {
	base := uint64(0)

	for _, e := range t {
		switch e.Mode {
		case pmx.TOR:
			s = append(s, span{base, e.Addr, e.Perm, e.Lock, e.Cache})
		case pmx.NAPOT:
			start, size := pmx.DecodeNAPOT(e.Addr)
			s = append(s, span{start, start + size, e.Perm, e.Lock, e.Cache})
		}

		base = e.Addr
	}

	return
}

func govern(s []span, addr uint64) (match []span) {
	for _, sp := range s {
		if addr >= sp.start && addr < sp.end {
			match = append(match, sp)
		}
	}

	return
}

// testMap mirrors the platform address map with the SRAM geometry of
// the configurator acceptance vectors.
func testMap() pmx.Map {
	m := mem.Protection()

	m.SRAMStart = 0x40000000
	m.SRAMEnd = 0x40008000
	m.TextEnd = 0x40004000

	return m
}
