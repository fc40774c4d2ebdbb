// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build !idram_split
// +build !idram_split

package tee

// splitCompiled selects the SRAM code/data split scenario.
const splitCompiled = false
