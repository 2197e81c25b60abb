package common

import (
	"bytes"
	"testing"
)

func TestWipeByteArray_ZeroesAllBytes(t *testing.T) {
	b := []byte("super-secret")
	WipeByteArray(b)
	if !bytes.Equal(b, make([]byte, len("super-secret"))) {
		t.Fatalf("expected all bytes zeroed, got %v", b)
	}
}

func TestWipeByteArray_EmptyAndNil(t *testing.T) {
	WipeByteArray(nil)
	WipeByteArray([]byte{})
}
