package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Hash returns the lowercase hex SHA-256 digest of payload
func Hash(payload []byte) string {
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

// HashJSON fingerprints the JSON encoding of v. Struct field order is fixed
// by the type, so equal values always produce equal digests.
func HashJSON(v any) (string, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return Hash(body), nil
}
