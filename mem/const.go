// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package mem

// SoC address map.
//
// The boundaries are consumed by the pmx configurator to program the
// PMA attribute filter and the PMP access permissions, every address
// outside the ranges below resolves to deny.
const (
	// CPU subsystem (CLINT, PLIC, debug module)
	SubsystemStart = 0x20000000
	SubsystemEnd   = 0x20010000 // 64kB

	// mask ROM
	ROMStart = 0x30000000
	ROMEnd   = 0x30050000 // 320kB

	// data section of the mask ROM layout
	DROMStart = 0x30010000

	// SRAM
	SRAMStart = 0x40000000
	SRAMEnd   = 0x40800000 // 8MB

	// cache mapped external flash (XIP)
	XIPStart = 0x42000000
	XIPEnd   = 0x43000000 // 16MB

	// low-power retention RAM
	LPRAMStart = 0x50000000
	LPRAMEnd   = 0x50008000 // 32kB

	// LP coprocessor reserved instruction range and LP executable text
	LPTextStart = 0x50002000
	LPTextEnd   = 0x50004000

	// peripheral registers
	PeripheralStart = 0x60000000
	PeripheralEnd   = 0x60100000 // 1MB

	// PMP granularity
	PMPGranularity = 0x1000

	// debug module status word
	DebugStatus = SubsystemStart + 0x0300

	// PMA filter registers
	PMABase = SubsystemStart + 0x8000
)

// The configurator assumes the ordering and alignment of the address
// map constants, a violation must fail the build (each expression
// below underflows its unsigned type when the constraint does not
// hold).
const (
	_ uint = SubsystemEnd - SubsystemStart - 1
	_ uint = ROMEnd - ROMStart - 1
	_ uint = DROMStart - ROMStart
	_ uint = ROMEnd - DROMStart - 1
	_ uint = SRAMEnd - SRAMStart - 1
	_ uint = XIPEnd - XIPStart - 1
	_ uint = XIPStart - SRAMEnd
	_ uint = LPRAMEnd - LPRAMStart - 1
	_ uint = LPTextStart - LPRAMStart
	_ uint = LPTextEnd - LPTextStart - 1
	_ uint = LPRAMEnd - LPTextEnd
	_ uint = PeripheralEnd - PeripheralStart - 1

	// NAPOT encoded regions require a power of two size and a size
	// aligned base
	_ uint = -((SubsystemEnd - SubsystemStart) & (SubsystemEnd - SubsystemStart - 1))
	_ uint = -(SubsystemStart & (SubsystemEnd - SubsystemStart - 1))
	_ uint = -((XIPEnd - XIPStart) & (XIPEnd - XIPStart - 1))
	_ uint = -(XIPStart & (XIPEnd - XIPStart - 1))
	_ uint = -((PeripheralEnd - PeripheralStart) & (PeripheralEnd - PeripheralStart - 1))
	_ uint = -(PeripheralStart & (PeripheralEnd - PeripheralStart - 1))

	// the ROM permission entry is narrowed to its data section only
	// when the latter starts at PMP granularity (see pmx.PermTable)
	_ uint = -(DROMStart & (PMPGranularity - 1))
)
