// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package util

import (
	"bytes"
	"debug/elf"
	"debug/gosym"
	"errors"
	"fmt"
)

// debugTarget is the ELF image used to resolve program counters (see
// SetDebugTarget).
var debugTarget []byte

// SetDebugTarget sets the ELF image used by PCToLine to resolve
// program counters of a loaded execution context.
func SetDebugTarget(buf []byte) {
	debugTarget = buf
}

// LookupSym returns the named symbol from an ELF image, the loaders
// use it to extract link time boundaries (e.g. the end of the
// instruction section) from the images they stage.
func LookupSym(buf []byte, name string) (*elf.Symbol, error) {
	exe, err := elf.NewFile(bytes.NewReader(buf))

	if err != nil {
		return nil, err
	}

	syms, err := exe.Symbols()

	if err != nil {
		return nil, err
	}

	for _, sym := range syms {
		if sym.Name == name {
			return &sym, nil
		}
	}

	return nil, errors.New("symbol not found")
}

func goSymTable(buf []byte) (symTable *gosym.Table, err error) {
	exe, err := elf.NewFile(bytes.NewReader(buf))

	if err != nil {
		return
	}

	addr := exe.Section(".text").Addr

	lineTableData, err := exe.Section(".gopclntab").Data()

	if err != nil {
		return
	}

	lineTable := gosym.NewLineTable(lineTableData, addr)

	symTableData, err := exe.Section(".gosymtab").Data()

	if err != nil {
		return
	}

	return gosym.NewTable(symTableData, lineTable)
}

// PCToLine resolves a program counter within the debug target image to
// its source file and line.
func PCToLine(pc uint64) (s string, err error) {
	if debugTarget == nil {
		return "", errors.New("debug target not set")
	}

	symTable, err := goSymTable(debugTarget)

	if err != nil {
		return
	}

	file, line, _ := symTable.PCToLine(pc)

	return fmt.Sprintf("%s:%d", file, line), nil
}
