package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	digest, err := HashPassword("Admin@123")
	require.NoError(t, err)

	assert.NotEqual(t, "Admin@123", digest)
	assert.True(t, strings.HasPrefix(digest, "$2"), "expected a bcrypt digest, got %q", digest)

	assert.True(t, CheckPassword(digest, "Admin@123"))
	assert.False(t, CheckPassword(digest, "admin@123"))
	assert.False(t, CheckPassword(digest, ""))
}

func TestHashPasswordIsSalted(t *testing.T) {
	first, err := HashPassword("same-password")
	require.NoError(t, err)
	second, err := HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword(first, "same-password"))
	assert.True(t, CheckPassword(second, "same-password"))
}

func TestHashPasswordAcceptsLongPassphrases(t *testing.T) {
	long := strings.Repeat("a", 80)

	digest, err := HashPassword(long)
	require.NoError(t, err)
	assert.True(t, CheckPassword(digest, long))

	// Bytes past the 72-byte cap do not participate in the match
	assert.True(t, CheckPassword(digest, strings.Repeat("a", 72)))
	assert.True(t, CheckPassword(digest, strings.Repeat("a", 200)))
	assert.False(t, CheckPassword(digest, strings.Repeat("b", 80)))
}

func TestCheckPasswordRejectsMalformedDigest(t *testing.T) {
	assert.False(t, CheckPassword("not-a-digest", "whatever"))
	assert.False(t, CheckPassword("", "whatever"))
}
