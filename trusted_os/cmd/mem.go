// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package cmd

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"regexp"
	"strconv"

	"golang.org/x/term"

	"github.com/usbarmory/tamago/dma"

	"github.com/usbarmory/GoTEE-lockdown/mem"
)

const maxBufferSize = 102400

func init() {
	Add(Cmd{
		Name:    "peek",
		Args:    2,
		Pattern: regexp.MustCompile(`^peek ([[:xdigit:]]+) (\d+)$`),
		Syntax:  "<hex offset> <size>",
		Help:    "memory display (use with caution)",
		Fn:      memReadCmd,
	})

	Add(Cmd{
		Name:    "poke",
		Args:    2,
		Pattern: regexp.MustCompile(`^poke ([[:xdigit:]]+) ([[:xdigit:]]+)$`),
		Syntax:  "<hex offset> <hex value>",
		Help:    "memory write   (use with caution)",
		Fn:      memWriteCmd,
	})
}

// mapped returns whether the argument range falls within an address map
// region, accesses outside them are rejected by the attribute filter
// and would fault even in M-mode.
func mapped(addr uint64, size uint64) bool {
	for _, r := range mem.Protection().Regions() {
		if addr >= r.Start && addr+size <= r.End {
			return true
		}
	}

	return false
}

func memCopy(start uint, size int, w []byte) (b []byte) {
	region, err := dma.NewRegion(start, size, true)

	if err != nil {
		panic("could not allocate memory copy DMA")
	}

	start, buf := region.Reserve(size, 0)
	defer region.Release(start)

	if len(w) > 0 {
		copy(buf, w)
	} else {
		b = make([]byte, size)
		copy(b, buf)
	}

	return
}

func memReadCmd(_ *term.Terminal, arg []string) (res string, err error) {
	addr, err := strconv.ParseUint(arg[0], 16, 32)

	if err != nil {
		return "", fmt.Errorf("invalid address, %v", err)
	}

	size, err := strconv.ParseUint(arg[1], 10, 32)

	if err != nil {
		return "", fmt.Errorf("invalid size, %v", err)
	}

	if (addr%4) != 0 || (size%4) != 0 {
		return "", fmt.Errorf("only 32-bit aligned accesses are supported")
	}

	if size > maxBufferSize {
		return "", fmt.Errorf("size argument must be <= %d", maxBufferSize)
	}

	if !mapped(addr, size) {
		return "", fmt.Errorf("address range is outside the platform address map")
	}

	return hex.Dump(memCopy(uint(addr), int(size), nil)), nil
}

func memWriteCmd(_ *term.Terminal, arg []string) (res string, err error) {
	addr, err := strconv.ParseUint(arg[0], 16, 32)

	if err != nil {
		return "", fmt.Errorf("invalid address, %v", err)
	}

	val, err := strconv.ParseUint(arg[1], 16, 32)

	if err != nil {
		return "", fmt.Errorf("invalid data, %v", err)
	}

	if !mapped(addr, 4) {
		return "", fmt.Errorf("address range is outside the platform address map")
	}

	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, uint32(val))

	memCopy(uint(addr), 4, buf)

	return
}
