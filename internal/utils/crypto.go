package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// verification token values carry 128 bits of entropy, hex-encoded
const tokenValueBytes = 16

// GenerateTokenValue draws a fresh token value from crypto/rand. Each call is
// an independent draw, so concurrent callers never share generator state.
func GenerateTokenValue() string {
	b := make([]byte, tokenValueBytes)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("failed to generate token value: %v", err))
	}
	return hex.EncodeToString(b)
}
