// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package pmx_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/usbarmory/GoTEE-lockdown/pmx"
)

func sramSpans(t [pmx.TableSize]pmx.Entry, m pmx.Map) (s []span) {
	for _, sp := range spans(t) {
		if sp.start >= m.SRAMStart && sp.end <= m.SRAMEnd {
			s = append(s, sp)
		}
	}

	return
}

// Acceptance vector: split application build, no debugger.
func TestSRAMSplit(t *testing.T) {
	m := testMap()
	tab := pmx.PermTable(m, pmx.AppSplit, detached)

	want := []span{
		{0x40000000, 0x40004000, pmx.RX, true, false},
		{0x40004000, 0x40008000, pmx.RW, true, false},
	}

	if diff := cmp.Diff(want, sramSpans(tab, m), cmp.AllowUnexported(span{})); diff != "" {
		t.Errorf("SRAM spans mismatch (-want +got):\n%s", diff)
	}
}

// Acceptance vector: bootloader stage.
func TestSRAMBootloader(t *testing.T) {
	m := testMap()
	tab := pmx.PermTable(m, pmx.Bootloader, detached)

	want := []span{
		{0x40000000, 0x40008000, pmx.None, false, false},
	}

	if diff := cmp.Diff(want, sramSpans(tab, m), cmp.AllowUnexported(span{})); diff != "" {
		t.Errorf("SRAM spans mismatch (-want +got):\n%s", diff)
	}
}

// Acceptance vector: debugger attached, regardless of the split flag.
func TestSRAMDebugger(t *testing.T) {
	m := testMap()

	want := []span{
		{0x40000000, 0x40008000, pmx.RWX, false, false},
	}

	for _, split := range []bool{false, true} {
		s := pmx.Select(false, split, attached)

		if s != pmx.DebugAttached {
			t.Fatalf("got scenario %v, want %v", s, pmx.DebugAttached)
		}

		tab := pmx.PermTable(m, s, attached)

		if diff := cmp.Diff(want, sramSpans(tab, m), cmp.AllowUnexported(span{})); diff != "" {
			t.Errorf("SRAM spans mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestSRAMNoSplit(t *testing.T) {
	m := testMap()
	tab := pmx.PermTable(m, pmx.AppNoSplit, detached)

	want := []span{
		{0x40000000, 0x40008000, pmx.RWX, true, false},
	}

	if diff := cmp.Diff(want, sramSpans(tab, m), cmp.AllowUnexported(span{})); diff != "" {
		t.Errorf("SRAM spans mismatch (-want +got):\n%s", diff)
	}
}

func TestDebuggerReverification(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic on probe mismatch")
		}
	}()

	samples := 0

	// report attached on selection, detached on re-verification
	glitched := func() bool {
		samples++
		return samples == 1
	}

	m := testMap()
	s := pmx.Select(false, false, glitched)

	if s != pmx.DebugAttached {
		t.Fatalf("got scenario %v, want %v", s, pmx.DebugAttached)
	}

	pmx.PermTable(m, s, glitched)
}

// Least privilege: every named region receives exactly the permission
// mandated for the active scenario, never more.
func TestLeastPrivilege(t *testing.T) {
	m := testMap()

	regions := []struct {
		name       string
		addr       uint64
		perm       map[pmx.Scenario]pmx.Perm
	}{
		{
			"subsystem", m.SubsystemStart,
			map[pmx.Scenario]pmx.Perm{
				pmx.Bootloader: pmx.RWX, pmx.AppSplit: pmx.RWX,
				pmx.AppNoSplit: pmx.RWX, pmx.DebugAttached: pmx.RWX,
			},
		},
		{
			"rom data", m.DROMStart,
			map[pmx.Scenario]pmx.Perm{
				pmx.Bootloader: pmx.R, pmx.AppSplit: pmx.R,
				pmx.AppNoSplit: pmx.R, pmx.DebugAttached: pmx.R,
			},
		},
		{
			"sram text", m.SRAMStart,
			map[pmx.Scenario]pmx.Perm{
				pmx.Bootloader: pmx.None, pmx.AppSplit: pmx.RX,
				pmx.AppNoSplit: pmx.RWX, pmx.DebugAttached: pmx.RWX,
			},
		},
		{
			"sram data", m.SRAMEnd - 4,
			map[pmx.Scenario]pmx.Perm{
				pmx.Bootloader: pmx.None, pmx.AppSplit: pmx.RW,
				pmx.AppNoSplit: pmx.RWX, pmx.DebugAttached: pmx.RWX,
			},
		},
		{
			"xip", m.XIPStart,
			map[pmx.Scenario]pmx.Perm{
				pmx.Bootloader: pmx.RX, pmx.AppSplit: pmx.RX,
				pmx.AppNoSplit: pmx.RX, pmx.DebugAttached: pmx.RX,
			},
		},
		{
			"lp reserved", m.LPRAMStart,
			map[pmx.Scenario]pmx.Perm{
				pmx.Bootloader: pmx.RW, pmx.AppSplit: pmx.RW,
				pmx.AppNoSplit: pmx.RW, pmx.DebugAttached: pmx.RW,
			},
		},
		{
			"lp text", m.LPTextStart,
			map[pmx.Scenario]pmx.Perm{
				pmx.Bootloader: pmx.RX, pmx.AppSplit: pmx.RX,
				pmx.AppNoSplit: pmx.RX, pmx.DebugAttached: pmx.RX,
			},
		},
		{
			"lp data", m.LPTextEnd,
			map[pmx.Scenario]pmx.Perm{
				pmx.Bootloader: pmx.RW, pmx.AppSplit: pmx.RW,
				pmx.AppNoSplit: pmx.RW, pmx.DebugAttached: pmx.RW,
			},
		},
		{
			"peripheral", m.PeripheralStart,
			map[pmx.Scenario]pmx.Perm{
				pmx.Bootloader: pmx.RW, pmx.AppSplit: pmx.RW,
				pmx.AppNoSplit: pmx.RW, pmx.DebugAttached: pmx.RW,
			},
		},
	}

	for _, s := range []pmx.Scenario{pmx.Bootloader, pmx.AppSplit, pmx.AppNoSplit, pmx.DebugAttached} {
		tab := pmx.PermTable(m, s, attached)
		resolved := spans(tab)

		for _, r := range regions {
			match := govern(resolved, r.addr)

			if len(match) != 1 {
				t.Fatalf("%v: %s (%#x) governed by %d entries", s, r.name, r.addr, len(match))
			}

			if match[0].perm != r.perm[s] {
				t.Errorf("%v: %s granted %v, want %v", s, r.name, match[0].perm, r.perm[s])
			}
		}
	}
}

func TestLockConsistency(t *testing.T) {
	m := testMap()

	// SRAM and LP RAM lock state per scenario
	cases := []struct {
		s    pmx.Scenario
		sram bool
		lp   bool
	}{
		{pmx.Bootloader, false, false},
		{pmx.AppSplit, true, true},
		{pmx.AppNoSplit, true, true},
		{pmx.DebugAttached, false, true},
	}

	for _, tc := range cases {
		tab := pmx.PermTable(m, tc.s, attached)
		resolved := spans(tab)

		for _, sp := range govern(resolved, m.SRAMStart) {
			if sp.lock != tc.sram {
				t.Errorf("%v: SRAM lock %v, want %v", tc.s, sp.lock, tc.sram)
			}
		}

		for _, sp := range govern(resolved, m.LPRAMStart) {
			if sp.lock != tc.lp {
				t.Errorf("%v: LP RAM lock %v, want %v", tc.s, sp.lock, tc.lp)
			}
		}

		// scenario independent locks
		for _, addr := range []uint64{m.SubsystemStart, m.DROMStart, m.PeripheralStart} {
			for _, sp := range govern(resolved, addr) {
				if !sp.lock {
					t.Errorf("%v: entry governing %#x unlocked", tc.s, addr)
				}
			}
		}
	}
}

func TestROMNarrowing(t *testing.T) {
	m := testMap()

	// aligned data section: narrowed to R, executable access is
	// delegated to the attribute table mapping
	tab := pmx.PermTable(m, pmx.AppNoSplit, detached)
	match := govern(spans(tab), m.ROMStart)

	if len(match) != 0 {
		t.Errorf("narrowed table still maps the ROM text section: %+v", match)
	}

	match = govern(spans(tab), m.DROMStart)

	if len(match) != 1 || match[0].perm != pmx.R {
		t.Errorf("ROM data section not narrowed to R: %+v", match)
	}

	// misaligned data section: full RX mapping from the ROM base
	m.DROMStart += 0x10

	tab = pmx.PermTable(m, pmx.AppNoSplit, detached)
	match = govern(spans(tab), m.ROMStart)

	if len(match) != 1 || match[0].perm != pmx.RX {
		t.Errorf("misaligned ROM data section not mapped RX from base: %+v", match)
	}
}

func TestXIPWritable(t *testing.T) {
	m := testMap()
	m.XIPWritable = true

	tab := pmx.PermTable(m, pmx.AppNoSplit, detached)
	match := govern(spans(tab), m.XIPStart)

	if len(match) != 1 || match[0].perm != pmx.RWX {
		t.Errorf("writable XIP backing not widened to RWX: %+v", match)
	}
}

func TestPermTableMonotonic(t *testing.T) {
	m := testMap()

	for _, s := range []pmx.Scenario{pmx.Bootloader, pmx.AppSplit, pmx.AppNoSplit, pmx.DebugAttached} {
		tab := pmx.PermTable(m, s, attached)
		prev := uint64(0)

		for i, e := range tab {
			if e.Mode == pmx.Off && e.Addr == 0 {
				// unused slot
				continue
			}

			if e.Addr < prev {
				t.Fatalf("%v: entry %d address %#x below previous boundary %#x", s, i, e.Addr, prev)
			}

			prev = e.Addr
		}
	}
}
