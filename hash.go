package identicon

import "crypto/md5" //nolint:gosec // MD5 seeds the visual pattern, it is not an integrity check

// HashBytes is the fixed 16-byte digest that seeds an identicon.
// It is produced once by Hash and then only read by the later stages.
type HashBytes [HashSize]byte

// Hash computes the MD5 digest of input. Every string, including the empty
// string, hashes to exactly HashSize bytes, and identical inputs always
// produce identical digests; that determinism is the only property the
// pipeline relies on.
func Hash(input string) HashBytes {
	return md5.Sum([]byte(input))
}
