// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package mem

import (
	"github.com/usbarmory/tamago/dma"
)

// This memory layout divides the SRAM between the two boot stages and
// the applet, the PMA/PMP address map constants bound all of it.
const (
	// First stage loader
	BootStart = 0x40000000
	BootSize  = 0x00100000 // 1MB

	// Trusted OS (second stage)
	TrustedOSStart = 0x40100000
	TrustedOSSize  = 0x00500000 // 5MB

	// Trusted Applet
	AppletStart = 0x40600000
	AppletSize  = 0x00180000 // 1.5MB

	// Trusted OS DMA (relocated to avoid conflicts with the applet)
	TrustedDMAStart = 0x40780000
	TrustedDMASize  = 0x00080000 // 512kB
)

const (
	_ uint = TrustedOSStart - (BootStart + BootSize)
	_ uint = AppletStart - (TrustedOSStart + TrustedOSSize)
	_ uint = TrustedDMAStart - (AppletStart + AppletSize)
	_ uint = SRAMEnd - (TrustedDMAStart + TrustedDMASize)
)

var (
	OSRegion     *dma.Region
	AppletRegion *dma.Region
)

func Init() {
	OSRegion, _ = dma.NewRegion(TrustedOSStart, TrustedOSSize, false)
	OSRegion.Reserve(TrustedOSSize, 0)

	AppletRegion, _ = dma.NewRegion(AppletStart, AppletSize, false)
	AppletRegion.Reserve(AppletSize, 0)
}
