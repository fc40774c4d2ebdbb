// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package pmx

// PermWriter is the interface of a PMP CSR driver, the tamago riscv64
// CPU instance satisfies it.
type PermWriter interface {
	WritePMP(off int, addr uint64, r, w, x bool, a int, l bool) error
}

// AttrWriter is the interface of a PMA filter driver (see the pma
// package).
type AttrWriter interface {
	WritePMA(off int, addr uint64, r, w, x, cacheable bool, a int, l bool) error
}

// Configure computes and applies both protection tables, returning the
// selected scenario.
//
// The attribute table is applied first so that no previously denied
// address is ever reachable with wider permissions while the
// permission table is being filled, the same discipline later boot
// stages rely upon. Entries are written in ascending slot order, all
// slots are written so that unlocked leftovers of a previous stage are
// reset.
//
// Configure is the sole per-stage initialization entry point and must
// be invoked exactly once per boot stage, before any other execution
// context or bus master is active: a second invocation without an
// intervening hardware reset is a precondition violation, not a
// handled error.
func Configure(aw AttrWriter, pw PermWriter, m Map, bootloader, split bool, dbgr func() bool) (s Scenario, err error) {
	s = Select(bootloader, split, dbgr)

	attr, _ := AttrTable(m)

	for i, e := range attr {
		r, w, x := e.Perm.Flags()

		if err = aw.WritePMA(i, e.Addr, r, w, x, e.Cache, int(e.Mode), e.Lock); err != nil {
			return
		}
	}

	perm := PermTable(m, s, dbgr)

	if s == DebugAttached && !dbgr() {
		// anti fault-injection: the probe is checked again right
		// before the table reaches the hardware
		panic("pmx: debugger detached during configuration")
	}

	for i, e := range perm {
		r, w, x := e.Perm.Flags()

		if err = pw.WritePMP(i, e.Addr, r, w, x, int(e.Mode), e.Lock); err != nil {
			return
		}
	}

	return
}
