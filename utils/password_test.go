package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	stored, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	parts := strings.SplitN(stored, ":", 2)
	require.Len(t, parts, 2)
	assert.Len(t, parts[0], 32) // 16 salt bytes, hex encoded
	assert.Len(t, parts[1], 64) // 32 key bytes, hex encoded

	assert.True(t, VerifyPassword("correct horse battery staple", stored))
	assert.False(t, VerifyPassword("correct horse battery stable", stored))
	assert.False(t, VerifyPassword("", stored))
}

func TestHashPasswordSaltsAreRandom(t *testing.T) {
	first, err := HashPassword("hunter22")
	require.NoError(t, err)
	second, err := HashPassword("hunter22")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword("hunter22", first))
	assert.True(t, VerifyPassword("hunter22", second))
}

func TestVerifyPasswordMalformedStoredHash(t *testing.T) {
	for _, stored := range []string{
		"",
		"no-separator",
		":",
		"deadbeef:",
		":deadbeef",
		"deadbeef:not-hex",
	} {
		assert.False(t, VerifyPassword("whatever", stored), "stored=%q", stored)
	}
}
