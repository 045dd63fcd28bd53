package light

import "testing"

func TestProofVerifierRoundTrip(t *testing.T) {
	leaves := make([][32]byte, 8)
	for i := range leaves {
		leaves[i][0] = byte(i + 1)
	}
	root := ComputeMerkleRoot(leaves)

	pv := NewProofVerifier(DefaultProofVerifierConfig())
	for idx := range leaves {
		branch := BuildMerkleBranch(leaves, uint64(idx))
		ok, err := pv.Verify(MerkleProof{
			Root:             root,
			Leaf:             leaves[idx],
			Branch:           branch,
			GeneralizedIndex: uint64(idx),
			Depth:            3,
		})
		if err != nil {
			t.Fatalf("index %d: %v", idx, err)
		}
		if !ok {
			t.Fatalf("index %d: expected valid proof", idx)
		}
	}
	if pv.ProofsVerified() != uint64(len(leaves)) {
		t.Fatalf("expected %d verified, got %d", len(leaves), pv.ProofsVerified())
	}
}

func TestProofVerifierCacheHit(t *testing.T) {
	leaves := make([][32]byte, 4)
	for i := range leaves {
		leaves[i][0] = byte(i + 1)
	}
	root := ComputeMerkleRoot(leaves)
	branch := BuildMerkleBranch(leaves, 0)

	pv := NewProofVerifier(DefaultProofVerifierConfig())
	proof := MerkleProof{Root: root, Leaf: leaves[0], Branch: branch, GeneralizedIndex: 0, Depth: 2}

	if _, err := pv.Verify(proof); err != nil {
		t.Fatal(err)
	}
	if _, err := pv.Verify(proof); err != nil {
		t.Fatal(err)
	}
	// Second call hit the cache, so only one increments ProofsVerified.
	if pv.ProofsVerified() != 1 {
		t.Fatalf("expected 1 verified (cache hit on second call), got %d", pv.ProofsVerified())
	}
}

func TestProofVerifierRejectsBadBranch(t *testing.T) {
	leaves := make([][32]byte, 4)
	for i := range leaves {
		leaves[i][0] = byte(i + 1)
	}
	root := ComputeMerkleRoot(leaves)
	branch := BuildMerkleBranch(leaves, 0)
	branch[0][0] ^= 0xFF

	pv := NewProofVerifier(DefaultProofVerifierConfig())
	ok, err := pv.Verify(MerkleProof{Root: root, Leaf: leaves[0], Branch: branch, GeneralizedIndex: 0, Depth: 2})
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("expected corrupted branch to fail verification")
	}
}

func TestProofVerifierRejectsEmptyBranch(t *testing.T) {
	pv := NewProofVerifier(DefaultProofVerifierConfig())
	_, err := pv.Verify(MerkleProof{Root: [32]byte{1}, Leaf: [32]byte{2}})
	if err != ErrProofEmptyPath {
		t.Fatalf("expected ErrProofEmptyPath, got %v", err)
	}
}

func TestProofVerifierRejectsZeroRoot(t *testing.T) {
	pv := NewProofVerifier(DefaultProofVerifierConfig())
	_, err := pv.Verify(MerkleProof{Branch: [][32]byte{{1}}})
	if err != ErrProofNilRoot {
		t.Fatalf("expected ErrProofNilRoot, got %v", err)
	}
}
