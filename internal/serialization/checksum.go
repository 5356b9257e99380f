package serialization

import "crypto/sha256"

// ComputeChecksum computes the SHA-256 checksum of the uncompressed payload.
func ComputeChecksum(payload []byte) [32]byte {
	return sha256.Sum256(payload)
}

// ValidateChecksum compares a computed checksum against the stored one.
// Returns ErrChecksumMismatch if they differ.
func ValidateChecksum(computed, stored [32]byte) error {
	if computed != stored {
		return ErrChecksumMismatch
	}
	return nil
}
