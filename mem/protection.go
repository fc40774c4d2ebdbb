// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package mem

import (
	"github.com/usbarmory/GoTEE-lockdown/pmx"
)

// Protection returns the SoC address map in the form consumed by the
// pmx configurator.
func Protection() pmx.Map {
	return pmx.Map{
		SubsystemStart: SubsystemStart,
		SubsystemEnd:   SubsystemEnd,

		ROMStart:  ROMStart,
		ROMEnd:    ROMEnd,
		DROMStart: DROMStart,

		SRAMStart: SRAMStart,
		SRAMEnd:   SRAMEnd,
		TextEnd:   TextEnd(),

		XIPStart:    XIPStart,
		XIPEnd:      XIPEnd,
		XIPWritable: XIPWritable,

		LPRAMStart:  LPRAMStart,
		LPRAMEnd:    LPRAMEnd,
		LPTextStart: LPTextStart,
		LPTextEnd:   LPTextEnd,

		PeripheralStart: PeripheralStart,
		PeripheralEnd:   PeripheralEnd,

		Granularity: PMPGranularity,
	}
}
