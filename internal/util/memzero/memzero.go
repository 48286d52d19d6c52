// Package memzero clears sensitive buffers once they are no longer needed.
package memzero

import "crypto/subtle"

// Wipe overwrites every buffer with zeros. Nil and empty buffers are skipped.
func Wipe(bufs ...[]byte) {
	for _, b := range bufs {
		if len(b) == 0 {
			continue
		}
		subtle.XORBytes(b, b, b)
	}
}
