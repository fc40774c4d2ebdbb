// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package pmx

// Scenario represents a mutually exclusive build/runtime configuration
// scenario for the permission table.
type Scenario int

const (
	// Bootloader leaves SRAM and LP RAM entries unlocked and without
	// permissions, the next boot stage reconfigures and locks them.
	Bootloader Scenario = iota
	// AppSplit splits SRAM in a non writable instruction range and a
	// non executable data range, both locked.
	AppSplit
	// AppNoSplit covers the whole SRAM with a single locked RWX
	// entry.
	AppNoSplit
	// DebugAttached covers the whole SRAM with a single unlocked RWX
	// entry, leaving an external debugger write access.
	DebugAttached
)

// String returns the scenario mnemonic.
func (s Scenario) String() string {
	switch s {
	case Bootloader:
		return "bootloader"
	case AppSplit:
		return "app/split"
	case AppNoSplit:
		return "app/no-split"
	case DebugAttached:
		return "debug"
	}

	return "?"
}

// Select returns the active configuration scenario. A sampled debugger
// probe overrides the bootloader and split distinctions, the
// bootloader stage overrides the split flag.
//
// The probe result must never be cached across privilege decisions,
// PermTable re-samples it at the point where it gates the RWX grant to
// resist fault injection on a single latched check.
func Select(bootloader, split bool, dbgr func() bool) Scenario {
	switch {
	case dbgr():
		return DebugAttached
	case bootloader:
		return Bootloader
	case split:
		return AppSplit
	default:
		return AppNoSplit
	}
}
