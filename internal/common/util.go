package common

// WipeByteArray overwrites the slice contents with zeroes. Used to clear
// plaintext secrets from memory as soon as they have been consumed.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
