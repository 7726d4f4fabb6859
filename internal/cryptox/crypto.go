// Package cryptox implements password hashing for stored accounts.
//
// A password is stretched with Argon2id using a per-user random salt; the
// stored verifier is the SHA-256 of the derived key. Only the salt and the
// verifier are persisted.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"

	"github.com/dmitrijs2005/plantvision/internal/common"
	"golang.org/x/crypto/argon2"
)

const SaltSize = 16

// DeriveKey stretches password with Argon2id (t=1, m=64MiB, p=4, 32 bytes).
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// MakeVerifier hashes a derived key into the value kept in the database.
func MakeVerifier(key []byte) []byte {
	sum := sha256.Sum256(key)
	return sum[:]
}

// HashPassword returns a fresh salt and the verifier for password.
func HashPassword(password string) (salt, verifier []byte) {
	salt = common.GenerateRandByteArray(SaltSize)
	key := DeriveKey([]byte(password), salt)
	defer common.WipeByteArray(key)
	return salt, MakeVerifier(key)
}

// VerifyPassword reports whether password matches the stored salt/verifier
// pair. The comparison is constant time.
func VerifyPassword(password string, salt, verifier []byte) bool {
	key := DeriveKey([]byte(password), salt)
	defer common.WipeByteArray(key)
	return subtle.ConstantTimeCompare(MakeVerifier(key), verifier) == 1
}
