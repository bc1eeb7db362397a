package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltBytes  = 16
	iterations = 100000
	keyBytes   = 32
)

// HashPassword derives a PBKDF2-HMAC-SHA256 key from the password with a
// fresh random salt and returns it as "salt:hash" in hex.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	saltHex := hex.EncodeToString(salt)
	// The salt is fed to the KDF in its hex form so stored hashes can be
	// re-derived from the stored string alone.
	key := pbkdf2.Key([]byte(password), []byte(saltHex), iterations, keyBytes, sha256.New)
	return saltHex + ":" + hex.EncodeToString(key), nil
}

// VerifyPassword re-derives the key with the stored salt and compares in
// constant time. Malformed stored values verify as false, never an error.
func VerifyPassword(password, storedHash string) bool {
	parts := strings.SplitN(storedHash, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return false
	}
	expected, err := hex.DecodeString(parts[1])
	if err != nil {
		return false
	}
	key := pbkdf2.Key([]byte(password), []byte(parts[0]), iterations, keyBytes, sha256.New)
	return subtle.ConstantTimeCompare(key, expected) == 1
}
