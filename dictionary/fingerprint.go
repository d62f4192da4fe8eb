package dictionary

import (
	"encoding/hex"

	"lukechampine.com/blake3"
)

// Fingerprint returns the hex BLAKE3-256 digest of words, each followed by
// a newline. It is order-sensitive; pass a prepared (sorted) set to
// identify a dictionary snapshot.
func Fingerprint(words []string) string {
	h := blake3.New(32, nil)
	for _, w := range words {
		_, _ = h.Write([]byte(w))
		_, _ = h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}
