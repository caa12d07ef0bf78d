package internal

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"time"
)

// GenerateSessionID creates a unique ID for a generation session based on
// timestamp and concept. Format: epochMillis_md5(concept)[:8]
func GenerateSessionID(concept string) string {
	epochMillis := time.Now().UnixNano() / 1000000

	hash := md5.Sum([]byte(concept))
	hashStr := hex.EncodeToString(hash[:])[:8]

	return fmt.Sprintf("%d_%s", epochMillis, hashStr)
}

// SanitizeFilename creates a safe filename from a string
func SanitizeFilename(s string) string {
	result := ""
	for _, r := range s {
		if isAlphaNumeric(r) || r == '-' || r == '_' {
			result += string(r)
		} else {
			result += "_"
		}
	}
	return result
}

// isAlphaNumeric checks if a rune is alphanumeric (Latin or Cyrillic)
func isAlphaNumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') || (r >= 'а' && r <= 'я') ||
		(r >= 'А' && r <= 'Я')
}
