// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package mem

import (
	"testing"
)

func TestTextEnd(t *testing.T) {
	cases := []struct {
		in   string
		want uint64
	}{
		{"", DefaultTextEnd},
		{"not-an-address", DefaultTextEnd},
		{"0x30000000", DefaultTextEnd}, // outside SRAM
		{"0x40800000", DefaultTextEnd}, // not below SRAM end
		{"0x40200010", DefaultTextEnd}, // not granularity aligned
		{"0x40200000", 0x40200000},
		{"1076887552", 0x40300000}, // decimal, base detection
	}

	defer func() {
		iramTextEnd = ""
	}()

	for _, tc := range cases {
		iramTextEnd = tc.in

		if got := TextEnd(); got != tc.want {
			t.Errorf("TextEnd() with %q = %#x, want %#x", tc.in, got, tc.want)
		}
	}
}
