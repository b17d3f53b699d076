// Package cryptox hashes and verifies account passwords with argon2id.
//
// Encoded hashes have the form
//
//	argon2id$<salt hex>$<key hex>
//
// and are what the account store persists instead of plaintext passwords.
package cryptox

import (
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/dmitrijs2005/back2me/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	scheme  = "argon2id"
	saltLen = 16
	keyLen  = 32
)

// ErrMalformedHash is returned when a stored hash cannot be decoded.
var ErrMalformedHash = errors.New("malformed password hash")

// DeriveKey stretches password with salt using argon2id.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, keyLen)
}

// HashPassword derives a key from password under a fresh random salt and
// returns the encoded form.
func HashPassword(password []byte) string {
	salt := common.GenerateRandByteArray(saltLen)
	key := DeriveKey(password, salt)
	return scheme + "$" + hex.EncodeToString(salt) + "$" + hex.EncodeToString(key)
}

// VerifyPassword reports whether password matches the encoded hash. The key
// comparison is constant-time.
func VerifyPassword(encoded string, password []byte) (bool, error) {
	salt, key, err := decode(encoded)
	if err != nil {
		return false, err
	}
	candidate := DeriveKey(password, salt)
	defer common.WipeByteArray(candidate)
	return subtle.ConstantTimeCompare(key, candidate) == 1, nil
}

// BurnPassword performs the same work as a verification against a random
// salt. It keeps lookups for unknown emails as slow as real ones.
func BurnPassword(password []byte) {
	common.WipeByteArray(DeriveKey(password, common.GenerateRandByteArray(saltLen)))
}

func decode(encoded string) (salt, key []byte, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 3 || parts[0] != scheme {
		return nil, nil, ErrMalformedHash
	}
	if salt, err = hex.DecodeString(parts[1]); err != nil || len(salt) == 0 {
		return nil, nil, ErrMalformedHash
	}
	if key, err = hex.DecodeString(parts[2]); err != nil || len(key) != keyLen {
		return nil, nil, ErrMalformedHash
	}
	return salt, key, nil
}
