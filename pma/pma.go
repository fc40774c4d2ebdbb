// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package pma implements a driver for the vendor Physical Memory
// Attribute (PMA) filter found on the SoC, a 16-entry table which
// controls cacheability and blanket deny attributes per address range,
// orthogonal to the RISC-V PMP access permissions.
//
// The entry layout mirrors pmpaddr/pmpcfg: the address register holds
// the range image right shifted by 2, the configuration register
// carries R/W/X flags, the address matching mode, a cacheable flag, an
// enable flag and a lock flag.
//
// This package is only meant to be used with `GOOS=tamago` as
// supported by the TamaGo framework for bare metal Go.
package pma

import (
	"errors"
	"sync/atomic"
	"unsafe"

	"github.com/usbarmory/tamago/bits"
)

// PMA registers
const (
	PMAADDR = 0x00
	PMACFG  = 0x40

	CFG_R = 0
	CFG_W = 1
	CFG_X = 2

	CFG_A      = 3
	CFG_A_MASK = 0b11

	CFG_C  = 5
	CFG_EN = 6
	CFG_L  = 7
)

// Entries is the size of the PMA table.
const Entries = 16

// Filter represents the PMA filter instance.
type Filter struct {
	// Base is the filter registers base address
	Base uint32
}

func reg32(addr uint32) *uint32 {
	return (*uint32)(unsafe.Pointer(uintptr(addr)))
}

// WritePMA sets the argument physical memory attribute entry, the
// address argument carries the pre-shift image (boundary or NAPOT
// encoding) as in the pmpaddr CSRs. Writes to a locked entry are
// ignored by the hardware until reset.
func (hw *Filter) WritePMA(off int, addr uint64, r, w, x, cacheable bool, a int, l bool) (err error) {
	if hw.Base == 0 {
		return errors.New("invalid PMA filter instance")
	}

	if off < 0 || off >= Entries {
		return errors.New("invalid PMA entry")
	}

	if a < 0 || a > int(CFG_A_MASK) {
		return errors.New("invalid address matching mode")
	}

	var cfg uint32

	bits.SetTo(&cfg, CFG_R, r)
	bits.SetTo(&cfg, CFG_W, w)
	bits.SetTo(&cfg, CFG_X, x)
	bits.SetN(&cfg, CFG_A, CFG_A_MASK, uint32(a))
	bits.SetTo(&cfg, CFG_C, cacheable)
	bits.Set(&cfg, CFG_EN)
	bits.SetTo(&cfg, CFG_L, l)

	atomic.StoreUint32(reg32(hw.Base+PMAADDR+uint32(4*off)), uint32(addr>>2))
	atomic.StoreUint32(reg32(hw.Base+PMACFG+uint32(4*off)), cfg)

	return
}

// ReadPMA returns the argument physical memory attribute entry.
func (hw *Filter) ReadPMA(off int) (addr uint64, r, w, x, cacheable bool, a int, l bool, err error) {
	if hw.Base == 0 {
		err = errors.New("invalid PMA filter instance")
		return
	}

	if off < 0 || off >= Entries {
		err = errors.New("invalid PMA entry")
		return
	}

	addr = uint64(atomic.LoadUint32(reg32(hw.Base+PMAADDR+uint32(4*off)))) << 2
	cfg := atomic.LoadUint32(reg32(hw.Base + PMACFG + uint32(4*off)))

	r = bits.Get(&cfg, CFG_R, 1) == 1
	w = bits.Get(&cfg, CFG_W, 1) == 1
	x = bits.Get(&cfg, CFG_X, 1) == 1
	a = int(bits.Get(&cfg, CFG_A, CFG_A_MASK))
	cacheable = bits.Get(&cfg, CFG_C, 1) == 1
	l = bits.Get(&cfg, CFG_L, 1) == 1

	return
}
