// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package main

import (
	"log"
	"os"
	"runtime"
	"runtime/goos"

	"github.com/usbarmory/GoTEE/applet"
	"github.com/usbarmory/GoTEE/syscall"

	"github.com/usbarmory/GoTEE-lockdown/mem"
	"github.com/usbarmory/GoTEE-lockdown/util"
)

func init() {
	log.SetFlags(log.Ltime)
	log.SetOutput(os.Stdout)

	// yield to monitor (w/ err != nil) on runtime panic
	goos.Exit = applet.Crash
}

func testRNG(n int) {
	buf := make([]byte, n)
	syscall.GetRandom(buf, uint(n))
	log.Printf("applet obtained %d random bytes from monitor: %x", n, buf)
}

func testRPC() {
	res := ""
	req := "hello"

	log.Printf("applet requests echo via RPC: %s", req)
	err := syscall.Call("RPC.Echo", req, &res)

	if err != nil {
		log.Printf("applet received RPC error: %v", err)
	} else {
		log.Printf("applet received echo via RPC: %s", res)
	}
}

func testLockdown() {
	status := util.LockdownStatus{}

	err := syscall.Call("RPC.Lockdown", true, &status)

	if err != nil {
		log.Printf("applet received RPC error: %v", err)
		return
	}

	log.Printf("applet queried lockdown state: scenario:%s locked:%d/16", status.Scenario, status.Locked)
}

func main() {
	log.Printf("%s/%s (%s) • TEE user applet", runtime.GOOS, runtime.GOARCH, runtime.Version())

	// test syscall interface
	testRNG(16)

	// test RPC interface
	testRPC()

	// query the memory protection state
	testLockdown()

	// test memory protection, each attempt is expected to trap to the
	// monitor as the applet context never spans these ranges
	mem.TestGapAccess("applet")

	// this should be unreachable
	mem.TestTextWrite("applet")

	// terminate applet
	applet.Exit()
}
