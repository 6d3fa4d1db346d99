package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashToken(t *testing.T) {
	h := HashToken("some-visitor-token")

	assert.Len(t, h, 64)
	assert.Regexp(t, "^[0-9a-f]{64}$", h)
	assert.Equal(t, h, HashToken("some-visitor-token"), "same token must hash identically")
	assert.NotEqual(t, h, HashToken("another-token"))
}

func TestNewTokenIsUniqueAndLongEnough(t *testing.T) {
	a := NewToken()
	b := NewToken()

	require.NotEqual(t, a, b)
	assert.GreaterOrEqual(t, len(a), MinTokenLength)
}

func TestFallbackHashNeverEmpty(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		h := FallbackHash()
		require.Len(t, h, 64)
		seen[h] = struct{}{}
	}
	assert.Len(t, seen, 100, "fallback identities should not collide")
}
