// Package password implements the one-way hashing discipline for stored
// secrets: bcrypt with a fixed work factor and a fresh random salt per call.
package password

import "golang.org/x/crypto/bcrypt"

// Cost is the bcrypt work factor applied to every new digest. It is the
// primary backpressure against brute-force guessing.
const Cost = 10

// Hash produces a salted bcrypt digest of the plaintext secret. Two calls
// with the same plaintext yield different digests.
func Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), Cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches the stored digest. The
// comparison happens in constant time inside bcrypt. Malformed digests
// fail closed: the result is false, never an error a caller could mistake
// for a match.
func Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
