package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/blogkeeper/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	argonSaltLen = 16
	argonKeyLen  = 32
)

// PasswordHasher produces and verifies salted argon2id password hashes.
// Cost parameters are fixed at construction; the zero value is not usable,
// use NewPasswordHasher.
type PasswordHasher struct {
	time    uint32
	memory  uint32
	threads uint8
}

// NewPasswordHasher constructs a hasher with the given argon2id cost
// parameters (iterations, memory in KiB, parallelism). Zero iterations or
// parallelism would make the key derivation panic, so both are raised to the
// minimum of 1.
func NewPasswordHasher(time, memory uint32, threads uint8) *PasswordHasher {
	if time == 0 {
		time = 1
	}
	if threads == 0 {
		threads = 1
	}
	return &PasswordHasher{time: time, memory: memory, threads: threads}
}

// Hash derives a one-way hash of password with a fresh random salt and
// returns it encoded as a PHC-style string:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>
//
// The encoding embeds the salt and cost parameters, so Verify needs no
// external state. An empty password always returns common.ErrEmptyPassword.
func (h *PasswordHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", common.ErrEmptyPassword
	}

	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, h.time, h.memory, h.threads, argonKeyLen)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.memory, h.time, h.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	return encoded, nil
}

// Verify re-derives the hash of password using the salt and parameters
// embedded in encoded and compares in constant time. It returns (false, nil)
// for a plain mismatch; an encoding that cannot be parsed returns an error
// wrapping common.ErrMalformedHash, so callers can tell "wrong password"
// from "corrupted stored hash".
func (h *PasswordHasher) Verify(password, encoded string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return false, fmt.Errorf("%w: expected 6 segments", common.ErrMalformedHash)
	}
	if parts[1] != "argon2id" {
		return false, fmt.Errorf("%w: unsupported algorithm %q", common.ErrMalformedHash, parts[1])
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return false, fmt.Errorf("%w: bad version segment", common.ErrMalformedHash)
	}

	var memory, iterations, threads uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &threads); err != nil {
		return false, fmt.Errorf("%w: bad parameter segment", common.ErrMalformedHash)
	}
	// argon2.IDKey panics on zero iterations, so both cost checks must
	// happen before re-deriving.
	if iterations == 0 {
		return false, fmt.Errorf("%w: iterations out of range", common.ErrMalformedHash)
	}
	if threads == 0 || threads > 255 {
		return false, fmt.Errorf("%w: parallelism out of range", common.ErrMalformedHash)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("%w: bad salt encoding", common.ErrMalformedHash)
	}

	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, fmt.Errorf("%w: bad hash encoding", common.ErrMalformedHash)
	}
	if len(expected) == 0 {
		return false, fmt.Errorf("%w: empty hash", common.ErrMalformedHash)
	}

	key := argon2.IDKey([]byte(password), salt, iterations, memory, uint8(threads), uint32(len(expected)))

	return subtle.ConstantTimeCompare(key, expected) == 1, nil
}
