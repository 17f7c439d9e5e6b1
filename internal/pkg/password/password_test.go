package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("s3cret-passw0rd")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret-passw0rd", hash)

	assert.True(t, Verify("s3cret-passw0rd", hash))
	assert.False(t, Verify("wrong-password", hash))
	assert.False(t, Verify("", hash))
}

func TestHashIsSalted(t *testing.T) {
	h1, err := Hash("same-password")
	require.NoError(t, err)
	h2, err := Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestHashToken(t *testing.T) {
	h := HashToken("abc123")

	// SHA-256, hex encoded
	assert.Len(t, h, 64)
	assert.Equal(t, h, HashToken("abc123"))
	assert.NotEqual(t, h, HashToken("abc124"))
}
