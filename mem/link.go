// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package mem

import (
	"log"
	"strconv"
)

// iramTextEnd is overridden at build time (see Makefile) with the end
// of the Trusted OS instruction section, rounded up to PMPGranularity.
var iramTextEnd string

// DefaultTextEnd is the SRAM code/data split boundary applied when no
// build time value is injected.
const DefaultTextEnd = SRAMStart + 0x00300000

// TextEnd returns the SRAM code/data split boundary for split
// configurations. An injected boundary which is malformed, outside
// SRAM or not PMP granularity aligned is rejected in favor of the
// default.
func TextEnd() uint64 {
	if iramTextEnd == "" {
		return DefaultTextEnd
	}

	addr, err := strconv.ParseUint(iramTextEnd, 0, 32)

	switch {
	case err != nil:
		log.Printf("invalid instruction section end %q (%v), using %#x", iramTextEnd, err, uint64(DefaultTextEnd))
	case addr <= SRAMStart || addr >= SRAMEnd:
		log.Printf("instruction section end %#x outside SRAM, using %#x", addr, uint64(DefaultTextEnd))
	case addr&(PMPGranularity-1) != 0:
		log.Printf("instruction section end %#x not aligned to %#x, using %#x", addr, uint64(PMPGranularity), uint64(DefaultTextEnd))
	default:
		return addr
	}

	return DefaultTextEnd
}
