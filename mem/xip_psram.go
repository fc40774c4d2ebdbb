// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build psram
// +build psram

package mem

// XIPWritable indicates whether the cache mapped flash region is
// backed by writable external memory (PSRAM builds).
const XIPWritable = true
