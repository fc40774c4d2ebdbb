// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package pmx

// NAPOTValid returns whether a range can be expressed with a single
// naturally aligned power of two entry.
func NAPOTValid(base, size uint64) bool {
	if size < 8 || size&(size-1) != 0 {
		return false
	}

	return base&(size-1) == 0
}

// EncodeNAPOT returns the NAPOT address image for a naturally aligned
// power of two range, the caller must ensure NAPOTValid. The pmpaddr
// right shift mandated by the privileged specification is left to the
// CSR driver.
func EncodeNAPOT(base, size uint64) uint64 {
	return base | (size/2 - 1)
}

// DecodeNAPOT returns the base and size of a NAPOT address image.
func DecodeNAPOT(addr uint64) (base, size uint64) {
	for size, t := uint64(2), addr; ; t >>= 1 {
		if t&1 == 0 {
			return addr &^ (size - 1), size
		}

		size <<= 1
	}
}

// rangeEntries encodes an address range as a single NAPOT entry when
// the range allows it, as an Off/TOR boundary pair otherwise. The Off
// marker shares the lock of its paired bound so that a locked range
// cannot be moved from below.
func rangeEntries(start, end uint64, perm Perm, cache, lock bool) []Entry {
	if NAPOTValid(start, end-start) {
		return []Entry{
			{Addr: EncodeNAPOT(start, end-start), Mode: NAPOT, Perm: perm, Cache: cache, Lock: lock},
		}
	}

	return []Entry{
		{Addr: start, Mode: Off, Perm: None, Lock: lock},
		{Addr: end, Mode: TOR, Perm: perm, Cache: cache, Lock: lock},
	}
}
