package memzero_test

import (
	"bytes"
	"testing"

	"eatgo/internal/util/memzero"
)

func TestWipe(t *testing.T) {
	a := []byte("derived-key-material")
	b := []byte{1, 2, 3}
	memzero.Wipe(a, nil, b)

	if !bytes.Equal(a, make([]byte, len(a))) || !bytes.Equal(b, make([]byte, len(b))) {
		t.Fatalf("buffers not wiped: %v %v", a, b)
	}
}
