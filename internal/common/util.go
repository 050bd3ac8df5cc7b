package common

import "crypto/rand"

// GenerateRandByteArray returns n cryptographically random bytes.
// crypto/rand.Read never fails on supported platforms; a failure here is
// unrecoverable, so the helper panics instead of returning an error.
func GenerateRandByteArray(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}

// WipeByteArray overwrites the contents of the provided byte slice with
// zeros. Useful for removing sensitive data such as PINs or keys from
// memory after use. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
