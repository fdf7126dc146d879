package hasher

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2 parameters chosen to mirror Spring Security's defaults
const (
	iterations = 10000
	saltSize   = 16
	hashSize   = sha256.Size
)

// HashPassword derives a PBKDF2-HMAC-SHA256 hash of the password with a
// random salt and returns it encoded as "base64(salt):base64(hash)".
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	hash := pbkdf2.Key([]byte(password), salt, iterations, hashSize, sha256.New)

	return base64.StdEncoding.EncodeToString(salt) + ":" + base64.StdEncoding.EncodeToString(hash), nil
}

// VerifyPassword re-derives the hash from the password and the stored
// salt and compares it in constant time.
func VerifyPassword(password, hashedPassword string) bool {
	parts := strings.Split(hashedPassword, ":")
	if len(parts) != 2 {
		return false
	}

	salt, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil {
		return false
	}

	storedHash, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return false
	}

	hash := pbkdf2.Key([]byte(password), salt, iterations, hashSize, sha256.New)

	return subtle.ConstantTimeCompare(storedHash, hash) == 1
}
