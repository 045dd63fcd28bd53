// Rogue-key defense for sync-committee public keys.
//
// A committee that admits the same compressed public key twice lets one
// signer count toward the 2/3 quorum more than once; this file detects that
// before a committee is accepted.
package crypto

// BLSAgg is the receiver for sync-committee public-key hygiene checks.
type BLSAgg struct{}

// NewBLSAgg creates a new BLSAgg instance.
func NewBLSAgg() *BLSAgg {
	return &BLSAgg{}
}

// HasDuplicatePubkeys checks whether any public keys are duplicated.
func (ba *BLSAgg) HasDuplicatePubkeys(pubkeys [][BLSPubkeySize]byte) bool {
	seen := make(map[[BLSPubkeySize]byte]bool, len(pubkeys))
	for _, pk := range pubkeys {
		if seen[pk] {
			return true
		}
		seen[pk] = true
	}
	return false
}
