// Package cryptox provides the primitives behind the encrypted local store:
// argon2id key derivation and AES-GCM sealing of opaque byte blobs.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
)

// NonceSize is the AES-GCM nonce length used by Seal and Open.
const NonceSize = 12

// DeriveKey stretches a device secret into a 32-byte AES-256 key using
// argon2id. The same secret and salt always produce the same key.
func DeriveKey(secret, salt []byte) []byte {
	return argonIDKey(secret, salt)
}

// Seal encrypts plaintext with AES-GCM under the given key.
//
// The key must be a valid AES key length (16, 24, or 32 bytes). A fresh
// random nonce is generated per call; ciphertext and nonce are returned
// separately and both are needed to decrypt.
func Seal(plaintext, key []byte) (ciphertext, nonce []byte, err error) {
	nonce = make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, err
	}

	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nil, err
	}

	ciphertext = aesgcm.Seal(nil, nonce, plaintext, nil)
	return ciphertext, nonce, nil
}

// Open decrypts ciphertext produced by Seal. The key and nonce must match
// the ones used during encryption; any tampering fails authentication.
func Open(ciphertext, nonce, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return aesgcm.Open(nil, nonce, ciphertext, nil)
}
