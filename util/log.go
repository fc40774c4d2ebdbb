// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package util

import (
	"bytes"
	"os"
)

var monitorOutput bytes.Buffer
var appletOutput bytes.Buffer

const outputLimit = 1024
const flushChr = 0x0a // \n

// BufferedStdoutLog buffers console output on a per-context basis to
// avoid interleaved logs, as the monitor and applet contexts log
// simultaneously.
func BufferedStdoutLog(c byte, monitor bool) {
	var buf *bytes.Buffer

	if monitor {
		buf = &monitorOutput
	} else {
		buf = &appletOutput
	}

	buf.WriteByte(c)

	if c == flushChr || buf.Len() > outputLimit {
		os.Stdout.Write(buf.Bytes())
		buf.Reset()
	}
}
