// Package password implements the argon2id credential codec. Hashes are
// self-describing PHC strings embedding the algorithm parameters and a fresh
// random salt, so no external salt storage is needed.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	argonTime    = 1
	argonMemKiB  = 64 * 1024
	argonThreads = 4
	saltLen      = 16
	keyLen       = 32
)

// Hash derives an argon2id digest of plaintext with a freshly generated
// random salt and returns it in PHC format:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<digest>
//
// Two calls with the same plaintext return different strings. A failure to
// read random bytes is a configuration-level fault, not a per-request one.
func Hash(plaintext string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	digest := argon2.IDKey([]byte(plaintext), salt, argonTime, argonMemKiB, argonThreads, keyLen)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemKiB, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(digest),
	)

	return encoded, nil
}

// Verify recomputes the digest of plaintext using the parameters and salt
// embedded in encoded and compares in constant time. It returns false, never
// an error, on a malformed encoded hash.
func Verify(plaintext, encoded string) bool {
	params, salt, digest, ok := decode(encoded)
	if !ok {
		return false
	}

	candidate := argon2.IDKey([]byte(plaintext), salt, params.time, params.memKiB, params.threads, uint32(len(digest)))

	return subtle.ConstantTimeCompare(candidate, digest) == 1
}

type params struct {
	memKiB  uint32
	time    uint32
	threads uint8
}

func decode(encoded string) (params, []byte, []byte, bool) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return params{}, nil, nil, false
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return params{}, nil, nil, false
	}

	var p params
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.memKiB, &p.time, &p.threads); err != nil {
		return params{}, nil, nil, false
	}
	if p.memKiB == 0 || p.time == 0 || p.threads == 0 {
		return params{}, nil, nil, false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return params{}, nil, nil, false
	}

	digest, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(digest) == 0 {
		return params{}, nil, nil, false
	}

	return p, salt, digest, true
}
