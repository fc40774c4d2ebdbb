// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"log"

	"golang.org/x/crypto/sha3"

	"github.com/usbarmory/GoTEE-lockdown/mem"
	"github.com/usbarmory/GoTEE-lockdown/util"

	"github.com/usbarmory/armory-boot/exec"
)

// osHash is the expected SHA-3 digest of the Trusted OS ELF binary,
// injected at build time.
var osHash string

// verify authenticates the next stage binary against the build time
// digest before anything of it is parsed or copied.
func verify(buf []byte) (err error) {
	if len(osHash) == 0 {
		return errors.New("missing expected digest")
	}

	expected, err := hex.DecodeString(osHash)

	if err != nil {
		return fmt.Errorf("invalid expected digest, %v", err)
	}

	sum := sha3.Sum512(buf)

	if !bytes.Equal(expected, sum[:]) {
		return fmt.Errorf("digest mismatch (%x)", sum)
	}

	return
}

// boot verifies, loads and executes the Trusted OS, it does not return
// on success.
func boot(elf []byte) (err error) {
	if err = verify(elf); err != nil {
		return
	}

	// the code/data split boundary must cover the whole instruction
	// section of the staged image
	if sym, err := util.LookupSym(elf, "runtime.etext"); err == nil && sym.Value > mem.TextEnd() {
		return fmt.Errorf("image text end %#x exceeds split boundary %#x", sym.Value, mem.TextEnd())
	}

	image := &exec.ELFImage{
		Region: mem.OSRegion,
		ELF:    elf,
	}

	if err = image.Load(); err != nil {
		return
	}

	entry := image.Entry()

	log.Printf("loader verified Trusted OS addr:%#x entry:%#x size:%d", mem.TrustedOSStart, entry, len(elf))

	// the next stage runs at the same privilege level, no context
	// switch is required
	jump(uint64(entry))

	return
}
