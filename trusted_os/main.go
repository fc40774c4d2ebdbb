// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package main

import (
	_ "embed"
	"fmt"
	"log"
	"os"
	"runtime"
	_ "unsafe"

	"github.com/usbarmory/tamago/board/qemu/sifive_u"
	"github.com/usbarmory/tamago/dma"

	"github.com/usbarmory/GoTEE-lockdown/mem"
	"github.com/usbarmory/GoTEE-lockdown/trusted_os/cmd"
	"github.com/usbarmory/GoTEE-lockdown/trusted_os/internal"
)

// The Trusted Applet ELF binary is embedded within the Trusted OS
// executable, using the Go embed package.

//go:embed assets/trusted_applet.elf
var taELF []byte

//go:linkname ramStart runtime/goos.RamStart
var ramStart uint64 = mem.TrustedOSStart

//go:linkname ramSize runtime/goos.RamSize
var ramSize uint64 = mem.TrustedOSSize

func init() {
	log.SetFlags(log.Ltime)
	log.SetOutput(os.Stdout)

	mem.Init()
	dma.Init(mem.TrustedDMAStart, mem.TrustedDMASize)

	cmd.Banner = fmt.Sprintf("%s/%s (%s) • TEE Security Monitor (M-mode)", runtime.GOOS, runtime.GOARCH, runtime.Version())

	tee.TA = taELF
}

func main() {
	// second boot stage: tighten and lock what the loader left open
	s := tee.Lockdown()

	log.Printf("SM applied memory lockdown (%s)", s)

	cmd.SerialConsole(sifive_u.UART0)

	log.Printf("SM says goodbye")
}
