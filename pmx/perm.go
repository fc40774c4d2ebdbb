// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package pmx

// Permission table slot assignment, one slot (or boundary linked
// group) per named region. The assignment is identical across
// scenarios, slots unused by the active scenario hold zero (Off)
// entries.
const (
	slotSubsystem = iota // 0
	slotROMBase          // 1
	slotROMTop           // 2
	slotSRAMBase         // 3
	slotSRAMText         // 4
	slotSRAMData         // 5
	slotXIP              // 6
	slotLPBase           // 7
	slotLPReserved       // 8
	slotLPText           // 9
	slotLPData           // 10
	slotPeripheral       // 11

	// MonitorSlot is the first of the slots left free for per-context
	// isolation by the GoTEE monitor.
	MonitorSlot // 12
)

// PermTable computes the permission table for the active scenario.
//
// The dbgr probe gates the DebugAttached RWX grant and is re-sampled
// at that exact point: a probe which no longer reports an attached
// debugger after scenario selection indicates glitching and causes an
// immediate, non recoverable panic.
func PermTable(m Map, s Scenario, dbgr func() bool) (t [TableSize]Entry) {
	lock := s != Bootloader

	// CPU subsystem, scenario independent
	t[slotSubsystem] = Entry{
		Addr: EncodeNAPOT(m.SubsystemStart, m.SubsystemEnd-m.SubsystemStart),
		Mode: NAPOT,
		Perm: RWX,
		Lock: true,
	}

	// mask ROM
	if m.DROMStart&(m.Granularity-1) == 0 {
		// The attribute table already maps [ROMStart, DROMStart)
		// as cacheable RX, narrowing the permission entry to the
		// data section trades one slot for that dependency (the
		// alignment is also asserted at build time on the address
		// map constants).
		t[slotROMBase] = Entry{Addr: m.DROMStart, Mode: Off, Lock: true}
		t[slotROMTop] = Entry{Addr: m.ROMEnd, Mode: TOR, Perm: R, Lock: true}
	} else {
		t[slotROMBase] = Entry{Addr: m.ROMStart, Mode: Off, Lock: true}
		t[slotROMTop] = Entry{Addr: m.ROMEnd, Mode: TOR, Perm: RX, Lock: true}
	}

	// SRAM
	switch s {
	case DebugAttached:
		// anti fault-injection: re-verify before granting RWX
		if !dbgr() {
			panic("pmx: debugger detached after scenario selection")
		}

		t[slotSRAMBase] = Entry{Addr: m.SRAMStart, Mode: Off}
		t[slotSRAMText] = Entry{Addr: m.SRAMEnd, Mode: TOR, Perm: RWX}
	case AppSplit:
		t[slotSRAMBase] = Entry{Addr: m.SRAMStart, Mode: Off, Lock: true}
		t[slotSRAMText] = Entry{Addr: m.TextEnd, Mode: TOR, Perm: RX, Lock: true}
		t[slotSRAMData] = Entry{Addr: m.SRAMEnd, Mode: TOR, Perm: RW, Lock: true}
	case AppNoSplit:
		t[slotSRAMBase] = Entry{Addr: m.SRAMStart, Mode: Off, Lock: true}
		t[slotSRAMText] = Entry{Addr: m.SRAMEnd, Mode: TOR, Perm: RWX, Lock: true}
	case Bootloader:
		// no permission and no lock, the next stage expands and
		// locks this span
		t[slotSRAMBase] = Entry{Addr: m.SRAMStart, Mode: Off}
		t[slotSRAMText] = Entry{Addr: m.SRAMEnd, Mode: TOR, Perm: None}
	}

	// cache mapped external flash (XIP)
	perm := RX

	if m.XIPWritable {
		perm = RWX
	}

	t[slotXIP] = Entry{
		Addr: EncodeNAPOT(m.XIPStart, m.XIPEnd-m.XIPStart),
		Mode: NAPOT,
		Perm: perm,
		Lock: lock,
	}

	// LP RAM: coprocessor reserved range, executable text, data
	t[slotLPBase] = Entry{Addr: m.LPRAMStart, Mode: Off, Lock: lock}
	t[slotLPReserved] = Entry{Addr: m.LPTextStart, Mode: TOR, Perm: RW, Lock: lock}
	t[slotLPText] = Entry{Addr: m.LPTextEnd, Mode: TOR, Perm: RX, Lock: lock}
	t[slotLPData] = Entry{Addr: m.LPRAMEnd, Mode: TOR, Perm: RW, Lock: lock}

	// peripheral registers, never executable, scenario independent
	t[slotPeripheral] = Entry{
		Addr: EncodeNAPOT(m.PeripheralStart, m.PeripheralEnd-m.PeripheralStart),
		Mode: NAPOT,
		Perm: RW,
		Lock: true,
	}

	return
}
