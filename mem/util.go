// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package mem

import (
	"log"
	"sync/atomic"
	"unsafe"
)

// TestTextWrite attempts to write one 32-bit word within the SRAM
// instruction range, split configurations are expected to fault such
// access.
func TestTextWrite(tag string) {
	addr := uint32(SRAMStart + 0x1000)
	mem := (*uint32)(unsafe.Pointer(uintptr(addr)))

	log.Printf("%s is about to write SRAM instruction memory at %#x", tag, addr)
	atomic.StoreUint32(mem, 0xdeadbeef)

	log.Printf("%s wrote SRAM instruction memory at %#x (*insecure configuration*)", tag, addr)
}

// TestGapAccess attempts to read one 32-bit word outside any valid
// region, the attribute table is expected to fault such access.
func TestGapAccess(tag string) {
	addr := uint32(SRAMEnd)
	mem := (*uint32)(unsafe.Pointer(uintptr(addr)))

	log.Printf("%s is about to read unmapped memory at %#x", tag, addr)
	val := atomic.LoadUint32(mem)

	log.Printf("%s read unmapped memory %#x: %#x (*insecure configuration*)", tag, addr, val)
}
