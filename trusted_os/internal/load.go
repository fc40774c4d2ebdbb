// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package tee

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/usbarmory/GoTEE/monitor"

	"github.com/usbarmory/GoTEE-lockdown/mem"
	"github.com/usbarmory/GoTEE-lockdown/pmx"
	"github.com/usbarmory/GoTEE-lockdown/util"

	"github.com/usbarmory/armory-boot/exec"
)

// TA is the Trusted Applet ELF image, embedded by the main package.
var TA []byte

// loadApplet loads a TamaGo unikernel as user mode applet.
func loadApplet() (ta *monitor.ExecCtx, err error) {
	if Scenario == pmx.AppSplit {
		// the locked SRAM data range is not executable
		return nil, errors.New("applet execution is not available in split builds")
	}

	image := &exec.ELFImage{
		Region: mem.AppletRegion,
		ELF:    TA,
	}

	if err = image.Load(); err != nil {
		return
	}

	if ta, err = monitor.Load(image.Entry(), image.Region, true); err != nil {
		return nil, fmt.Errorf("SM could not load applet, %v", err)
	}

	log.Printf("SM loaded applet addr:%#x entry:%#x size:%d", ta.Memory.Start, ta.PC, len(TA))

	// map the applet context on the monitor permission slots
	if err = configurePMP(ta, pmx.MonitorSlot); err != nil {
		return nil, fmt.Errorf("SM could not configure applet PMP, %v", err)
	}

	// register applet RPC receiver
	ta.Server.Register(&RPC{})

	// set stack pointer to the end of applet memory
	ta.X2 = mem.AppletStart + mem.AppletSize

	// override default handler to improve logging
	ta.Handler = goHandler

	// set applet as ELF debugging target
	util.SetDebugTarget(TA)

	return
}

// Applet runs the embedded applet to completion.
func Applet() (err error) {
	var wg sync.WaitGroup
	var ta *monitor.ExecCtx

	if ta, err = loadApplet(); err != nil {
		return
	}

	wg.Add(1)
	go run(ta, &wg)

	log.Printf("SM waiting for applet")
	wg.Wait()

	return
}

func run(ctx *monitor.ExecCtx, wg *sync.WaitGroup) {
	log.Printf("SM starting applet sp:%#.8x pc:%#.8x", ctx.X2, ctx.PC)

	err := ctx.Run()

	if wg != nil {
		wg.Done()
	}

	log.Printf("SM stopped applet sp:%#.8x ra:%#.8x pc:%#.8x err:%v", ctx.X2, ctx.X1, ctx.PC, err)

	if err != nil {
		pcLine, _ := util.PCToLine(ctx.PC)
		lrLine, _ := util.PCToLine(ctx.X1)

		if pcLine != "" || lrLine != "" {
			log.Printf("stack trace:\n  %s\n  %s", pcLine, lrLine)
		}
	}
}
