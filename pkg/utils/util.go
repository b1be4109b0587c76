package util

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// GenerateBase64Key generates a secure random key and returns it base64
// URL-encoded. Used to mint the PASETO secret (must be 32 bytes for
// v2.local) and kiosk registration codes.
func GenerateBase64Key(size int) (string, error) {
	key := make([]byte, size)
	if _, err := rand.Read(key); err != nil {
		return "", fmt.Errorf("failed to generate random key: %w", err)
	}
	return base64.URLEncoding.EncodeToString(key), nil
}
