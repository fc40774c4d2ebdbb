// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package pmx

import (
	"fmt"
)

// AttrTable computes the attribute table: one deny entry (or boundary
// pair) per gap between valid regions and one locked cacheable entry
// for the regions served by the cache controller (mask ROM, XIP). The
// last entry always extends to MaxAddr so that the top of the address
// space is denied.
//
// The table is scenario independent and is returned fully populated,
// unused slots hold zero (Off) entries which reset any stale
// configuration when applied.
//
// Exceeding TableSize is a chip geometry violation, not a runtime
// condition: AttrTable panics and the platform map is verified by the
// package tests.
func AttrTable(m Map) (t [TableSize]Entry, n int) {
	emit := func(entries ...Entry) {
		for _, e := range entries {
			if n >= TableSize {
				panic(fmt.Sprintf("pmx: attribute table exhausted (%v)", e))
			}

			t[n] = e
			n++
		}
	}

	base := uint64(0)

	for _, r := range m.Regions() {
		if base < r.Start {
			emit(rangeEntries(base, r.Start, None, false, true)...)
		}

		switch r.Kind {
		case ROM:
			// The ROM configures its own region as cacheable,
			// its attribute entry locks that configuration and
			// doubles as the executable mapping backing the
			// narrowed ROM permission entry (see PermTable).
			emit(rangeEntries(r.Start, r.End, RX, true, true)...)
		case XIP:
			// Cacheable executable mapping for the flash cache
			// region, writable only with external memory
			// backing.
			perm := RX

			if m.XIPWritable {
				perm = RWX
			}

			emit(rangeEntries(r.Start, r.End, perm, true, true)...)
		}

		base = r.End
	}

	if base <= MaxAddr {
		// closure at the top of the address space
		emit(
			Entry{Addr: base, Mode: Off, Perm: None, Lock: true},
			Entry{Addr: MaxAddr, Mode: TOR, Perm: None, Lock: true},
		)
	}

	return
}
