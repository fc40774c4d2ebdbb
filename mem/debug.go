// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && riscv64
// +build tamago,riscv64

package mem

import (
	"sync/atomic"
	"unsafe"

	"github.com/usbarmory/tamago/bits"
)

// debug module status flag
const dbgAttached = 0

// DebuggerAttached samples the debug module status word, the result
// must never be cached across privilege decisions.
func DebuggerAttached() bool {
	status := atomic.LoadUint32((*uint32)(unsafe.Pointer(uintptr(DebugStatus))))

	return bits.Get(&status, dbgAttached, 1) == 1
}
