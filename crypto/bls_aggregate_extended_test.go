package crypto

import (
	"math/big"
	"testing"
)

func TestHasDuplicatePubkeys(t *testing.T) {
	ba := NewBLSAgg()

	pk1 := BLSPubkeyFromSecret(big.NewInt(1))
	pk2 := BLSPubkeyFromSecret(big.NewInt(2))

	if ba.HasDuplicatePubkeys([][BLSPubkeySize]byte{pk1, pk2}) {
		t.Fatal("should not detect duplicates in unique set")
	}
	if !ba.HasDuplicatePubkeys([][BLSPubkeySize]byte{pk1, pk2, pk1}) {
		t.Fatal("should detect duplicate")
	}
}

func TestHasDuplicatePubkeysEmpty(t *testing.T) {
	ba := NewBLSAgg()
	if ba.HasDuplicatePubkeys(nil) {
		t.Fatal("empty set has no duplicates")
	}
}
