package utils

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTokenValue(t *testing.T) {
	value := GenerateTokenValue()
	assert.Len(t, value, 32, "16 random bytes hex-encoded")

	_, err := hex.DecodeString(value)
	require.NoError(t, err, "token value should be valid hex")
}

func TestGenerateTokenValueUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		value := GenerateTokenValue()
		require.False(t, seen[value], "token values must not repeat")
		seen[value] = true
	}
}
