// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package main

import (
	_ "embed"
	"log"
	"os"
	"runtime"
	_ "unsafe"

	"github.com/usbarmory/tamago/soc/sifive/fu540"

	"github.com/usbarmory/GoTEE-lockdown/mem"
	"github.com/usbarmory/GoTEE-lockdown/pma"
	"github.com/usbarmory/GoTEE-lockdown/pmx"
)

// The Trusted OS ELF binary is embedded within the loader executable,
// using the Go embed package.

//go:embed assets/trusted_os.elf
var osELF []byte

//go:linkname ramStart runtime/goos.RamStart
var ramStart uint64 = mem.BootStart

//go:linkname ramSize runtime/goos.RamSize
var ramSize uint64 = mem.BootSize

func init() {
	log.SetFlags(log.Ltime)
	log.SetOutput(os.Stdout)

	mem.Init()
}

func main() {
	log.Printf("%s/%s (%s) • boot loader", runtime.GOOS, runtime.GOARCH, runtime.Version())

	// first boot stage: open permissions, nothing locked, so that the
	// next stage can tighten them for its own build scenario
	filter := &pma.Filter{
		Base: mem.PMABase,
	}

	s, err := pmx.Configure(filter, fu540.RV64, mem.Protection(), true, false, mem.DebuggerAttached)

	if err != nil {
		log.Fatalf("loader could not configure memory protection, %v", err)
	}

	log.Printf("loader applied memory protection (%s)", s)

	if err = boot(osELF); err != nil {
		log.Fatalf("loader could not boot Trusted OS, %v", err)
	}

	// this should be unreachable
	log.Printf("loader says goodbye")
}
