package store

import (
	"encoding/hex"
	"errors"
	"os"

	"golang.org/x/crypto/blake2b"

	"docsift/internal/domain"
)

// Digest returns a short hex BLAKE2b-256 digest of b.
//
// It truncates to 8 bytes (16 hex chars); run IDs and source refs only
// need to distinguish file states, not resist collision attacks.
func Digest(b []byte) string {
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:8])
}

// FileDigest digests the content of the file at path.
func FileDigest(path string) (string, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", domain.E("store.digest", domain.KindNotFound, path, err)
	}
	if err != nil {
		return "", domain.E("store.digest", domain.KindUnknown, path, err)
	}
	return Digest(b), nil
}
