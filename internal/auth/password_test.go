package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	passwords := []string{
		"password123",
		"",
		"pa$$w0rd with spaces",
		"пароль-unicode",
	}

	for _, password := range passwords {
		hash, err := HashPassword(password)
		require.NoError(t, err)
		assert.NotEqual(t, password, hash)
		assert.True(t, CheckPassword(password, hash))
		assert.False(t, CheckPassword(password+"x", hash))
	}
}

func TestHashPasswordRandomSalt(t *testing.T) {
	first, err := HashPassword("same-input")
	require.NoError(t, err)
	second, err := HashPassword("same-input")
	require.NoError(t, err)

	// Same plaintext, different salts, both still verify
	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword("same-input", first))
	assert.True(t, CheckPassword("same-input", second))
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	assert.False(t, CheckPassword("anything", "not-a-bcrypt-hash"))
	assert.False(t, CheckPassword("anything", ""))
}
