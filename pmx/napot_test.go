// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package pmx_test

import (
	"testing"

	"github.com/usbarmory/GoTEE-lockdown/pmx"
)

func TestNAPOTValid(t *testing.T) {
	cases := []struct {
		base, size uint64
		want       bool
	}{
		{0x00000000, 0x20000000, true},
		{0x20000000, 0x00010000, true},
		{0x42000000, 0x01000000, true},
		{0x60000000, 0x00100000, true},
		{0x20010000, 0x0fff0000, false}, // size not a power of two
		{0x30000000, 0x00050000, false}, // size not a power of two
		{0x00001000, 0x00002000, false}, // base not size aligned
		{0x40000000, 0x00000004, false}, // below minimum NAPOT size
		{0x40000000, 0x00000000, false},
	}

	for _, tc := range cases {
		if got := pmx.NAPOTValid(tc.base, tc.size); got != tc.want {
			t.Errorf("NAPOTValid(%#x, %#x) = %v, want %v", tc.base, tc.size, got, tc.want)
		}
	}
}

func TestNAPOTEncoding(t *testing.T) {
	cases := []struct {
		base, size uint64
		want       uint64
	}{
		{0x00000000, 0x20000000, 0x0fffffff},
		{0x20000000, 0x00010000, 0x20007fff},
		{0x42000000, 0x01000000, 0x427fffff},
		{0x60000000, 0x00100000, 0x6007ffff},
		{0x40000000, 0x00000008, 0x40000003},
	}

	for _, tc := range cases {
		addr := pmx.EncodeNAPOT(tc.base, tc.size)

		if addr != tc.want {
			t.Errorf("EncodeNAPOT(%#x, %#x) = %#x, want %#x", tc.base, tc.size, addr, tc.want)
		}

		base, size := pmx.DecodeNAPOT(addr)

		if base != tc.base || size != tc.size {
			t.Errorf("DecodeNAPOT(%#x) = %#x, %#x, want %#x, %#x", addr, base, size, tc.base, tc.size)
		}
	}
}
