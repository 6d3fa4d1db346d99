package identity

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

// MinTokenLength is the shortest raw cookie token accepted as-is.
// Anything shorter is treated as missing and replaced.
const MinTokenLength = 16

// NewToken returns a fresh opaque visitor token.
func NewToken() string {
	return uuid.NewString()
}

// HashToken derives the stored identity from a raw token. Only this
// digest ever reaches the database.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// FallbackHash produces a non-persistent per-request identity. It is
// used when a cookie cannot be issued and must never fail, so a rand
// read error degrades to the timestamp alone.
func FallbackHash() string {
	buf := make([]byte, 40)
	_, _ = rand.Read(buf[:32])
	binary.BigEndian.PutUint64(buf[32:], uint64(time.Now().UnixNano()))
	sum := sha256.Sum256(buf)
	return hex.EncodeToString(sum[:])
}
