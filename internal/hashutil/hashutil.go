package hashutil

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// SHA256Hex returns a trimmed-input SHA-256 hash encoded in hex.
func SHA256Hex(input string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(input)))
	return hex.EncodeToString(sum[:])
}

// ShortKey returns the first 16 hex characters of SHA256Hex(input).
// Used for cache keys where a full digest is needlessly long.
func ShortKey(input string) string {
	return SHA256Hex(input)[:16]
}
