// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package pmx implements boot-time configuration of RISC-V physical
// memory access controls for SoCs which pair the standard 16-entry PMP
// (access permissions) with a vendor 16-entry PMA filter (memory
// attributes).
//
// The package computes both tables from a chip address map so that
// every address resolves to an explicit minimal permission, or to
// deny: the attribute table blankets all gaps between valid regions
// while the permission table grants each named region its least
// privilege for the active build scenario.
//
// The package is hardware independent, table application goes through
// the AttrWriter and PermWriter interfaces (see Configure), satisfied
// on TamaGo targets by the pma.Filter driver and the tamago riscv64
// CPU instance.
package pmx

import (
	"fmt"
)

// TableSize is the number of entries in each hardware table.
const TableSize = 16

// MaxAddr is the maximum representable physical address, the last
// attribute table entry always extends to it to guarantee closure at
// the top of the address space.
const MaxAddr = 0xffffffff

// Perm represents an access permission set.
type Perm uint8

// Access permission sets, never wider than what a region and scenario
// require.
const (
	None Perm = iota
	R
	RW
	RX
	RWX
)

// Flags returns the individual read, write and execute permission
// flags.
func (p Perm) Flags() (r, w, x bool) {
	switch p {
	case R:
		r = true
	case RW:
		r, w = true, true
	case RX:
		r, x = true, true
	case RWX:
		r, w, x = true, true, true
	}

	return
}

// String returns the permission set mnemonic.
func (p Perm) String() string {
	switch p {
	case None:
		return "----"
	case R:
		return "r--"
	case RW:
		return "rw-"
	case RX:
		return "r-x"
	case RWX:
		return "rwx"
	}

	return "?"
}

// Mode represents a range encoding, values follow the pmpcfg address
// matching field (A) of the RISC-V privileged specification.
type Mode int

// Range encodings. An Off entry carries no matching rule of its own,
// it sets the base boundary for the immediately following TOR entry.
const (
	Off Mode = iota
	TOR
	NA4
	NAPOT
)

// String returns the range encoding mnemonic.
func (m Mode) String() string {
	switch m {
	case Off:
		return "OFF"
	case TOR:
		return "TOR"
	case NA4:
		return "NA4"
	case NAPOT:
		return "NAPOT"
	}

	return "?"
}

// Entry represents a single protection table entry.
type Entry struct {
	// Addr is the entry address image: the upper boundary for TOR,
	// the base boundary for Off, the NAPOT encoded range otherwise
	// (see EncodeNAPOT). The pmpaddr right shift is applied by the
	// CSR driver.
	Addr uint64
	// Mode is the range encoding
	Mode Mode
	// Perm is the access permission set
	Perm Perm
	// Lock makes the entry immutable until hardware reset
	Lock bool
	// Cache marks the range as cacheable (attribute table only)
	Cache bool
}

// String returns a one line entry representation.
func (e Entry) String() string {
	return fmt.Sprintf("addr:%#.8x %-5s %s lock:%-5v cache:%v",
		e.Addr, e.Mode, e.Perm, e.Lock, e.Cache)
}

// Map represents a chip address map, all ranges are half-open
// ([Start, End)) and must be in ascending, non overlapping order (see
// mem package for the build time assertions on the platform values).
type Map struct {
	// CPU subsystem (interrupt and debug module registers)
	SubsystemStart, SubsystemEnd uint64

	// mask ROM and the start of its data section
	ROMStart, ROMEnd uint64
	DROMStart        uint64

	// SRAM and its link time code/data split boundary
	SRAMStart, SRAMEnd uint64
	TextEnd            uint64

	// cache mapped external flash (XIP)
	XIPStart, XIPEnd uint64
	// XIPWritable widens the XIP region to writable external memory
	XIPWritable bool

	// low-power retention RAM, its coprocessor reserved range end
	// and executable text boundaries
	LPRAMStart, LPRAMEnd   uint64
	LPTextStart, LPTextEnd uint64

	// peripheral registers
	PeripheralStart, PeripheralEnd uint64

	// PMP granularity
	Granularity uint64
}

// RegionKind tags a named valid region.
type RegionKind int

// Named valid regions, in ascending address order.
const (
	Subsystem RegionKind = iota
	ROM
	SRAM
	XIP
	LPRAM
	Peripheral
)

// Region represents a named valid address region.
type Region struct {
	Start uint64
	End   uint64
	Kind  RegionKind
}

// Regions returns the ordered list of valid regions, their complement
// within [0, MaxAddr] is denied by the attribute table.
func (m Map) Regions() []Region {
	return []Region{
		{m.SubsystemStart, m.SubsystemEnd, Subsystem},
		{m.ROMStart, m.ROMEnd, ROM},
		{m.SRAMStart, m.SRAMEnd, SRAM},
		{m.XIPStart, m.XIPEnd, XIP},
		{m.LPRAMStart, m.LPRAMEnd, LPRAM},
		{m.PeripheralStart, m.PeripheralEnd, Peripheral},
	}
}
