// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package tee

import (
	"log"

	"github.com/usbarmory/tamago/soc/sifive/fu540"

	"github.com/usbarmory/GoTEE-lockdown/mem"
	"github.com/usbarmory/GoTEE-lockdown/pma"
	"github.com/usbarmory/GoTEE-lockdown/pmx"
)

// Scenario is the configuration scenario applied by Lockdown.
var Scenario pmx.Scenario

// PMA is the SoC attribute filter instance.
var PMA = &pma.Filter{
	Base: mem.PMABase,
}

// Lockdown programs the PMA attribute filter and the PMP permission
// table for the application stage, locking all entries the active
// scenario mandates. It must be invoked exactly once, before any other
// execution context runs.
func Lockdown() pmx.Scenario {
	s, err := pmx.Configure(PMA, fu540.RV64, mem.Protection(), false, splitCompiled, mem.DebuggerAttached)

	if err != nil {
		// An incomplete lockdown leaves denied ranges reachable,
		// there is nothing to gracefully degrade to.
		log.Fatalf("SM could not configure memory protection, %v", err)
	}

	Scenario = s

	return s
}
