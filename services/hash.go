package services

import (
	"crypto/sha1"
	"encoding/hex"
	"io"
	"os"
)

// HashFile returns the lowercase hex SHA-1 digest of the file's full content.
// Used for change detection and display, not as a security boundary.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha1.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
