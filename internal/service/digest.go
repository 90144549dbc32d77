package service

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

// Digester derives a one-way digest from a password. The digest must be
// deterministic for a given input: users are looked up by the
// (email, digest) pair.
type Digester interface {
	Digest(plain string) string
}

// PBKDF2Digester derives digests with PBKDF2-SHA256 and an application-wide
// salt.
type PBKDF2Digester struct {
	salt       []byte
	iterations int
}

func NewPBKDF2Digester(salt string, iterations int) *PBKDF2Digester {
	if iterations <= 0 {
		iterations = 4096
	}
	return &PBKDF2Digester{salt: []byte(salt), iterations: iterations}
}

func (d *PBKDF2Digester) Digest(plain string) string {
	key := pbkdf2.Key([]byte(plain), d.salt, d.iterations, 32, sha256.New)
	return hex.EncodeToString(key)
}
