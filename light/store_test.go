package light

import "testing"

func TestNewStoreNotBootstrapped(t *testing.T) {
	s := NewStore(MinimalSpec())
	if s.Bootstrapped() {
		t.Fatal("fresh store should not be bootstrapped")
	}
	if _, ok := s.LatestExecutionState(); ok {
		t.Fatal("fresh store should have no execution state")
	}
}

func TestStoreFinalizedBeaconStateLookup(t *testing.T) {
	s := NewStore(MinimalSpec())
	var root [32]byte
	root[0] = 1
	s.finalizedBeaconState.Put(root, CompactBeaconState{Slot: 10})

	got, ok := s.FinalizedBeaconState(root)
	if !ok {
		t.Fatal("expected state to be found")
	}
	if got.Slot != 10 {
		t.Fatalf("slot = %d, want 10", got.Slot)
	}

	var missing [32]byte
	missing[0] = 2
	if _, ok := s.FinalizedBeaconState(missing); ok {
		t.Fatal("expected miss for unknown root")
	}
}

func TestStoreExecutionHeaderLookup(t *testing.T) {
	s := NewStore(MinimalSpec())
	var hash [32]byte
	hash[0] = 7
	s.executionHeaders.Put(hash, CompactExecutionHeader{BlockNumber: 42})

	got, ok := s.ExecutionHeader(hash)
	if !ok {
		t.Fatal("expected header to be found")
	}
	if got.BlockNumber != 42 {
		t.Fatalf("block number = %d, want 42", got.BlockNumber)
	}
}

func TestRingBufferEvictsOldest(t *testing.T) {
	rb := newRingBuffer[int](3)
	var k1, k2, k3, k4 [32]byte
	k1[0], k2[0], k3[0], k4[0] = 1, 2, 3, 4

	rb.Put(k1, 1)
	rb.Put(k2, 2)
	rb.Put(k3, 3)
	if rb.Len() != 3 {
		t.Fatalf("len = %d, want 3", rb.Len())
	}

	rb.Put(k4, 4)
	if rb.Len() != 3 {
		t.Fatalf("len after eviction = %d, want 3", rb.Len())
	}
	if _, ok := rb.Get(k1); ok {
		t.Fatal("oldest entry should have been evicted")
	}
	if v, ok := rb.Get(k4); !ok || v != 4 {
		t.Fatal("newest entry should be present")
	}
}

func TestRingBufferOverwriteDoesNotEvict(t *testing.T) {
	rb := newRingBuffer[int](2)
	var k1, k2 [32]byte
	k1[0], k2[0] = 1, 2

	rb.Put(k1, 1)
	rb.Put(k2, 2)
	rb.Put(k1, 100) // overwrite existing key, should not evict k2
	if rb.Len() != 2 {
		t.Fatalf("len = %d, want 2", rb.Len())
	}
	if v, ok := rb.Get(k1); !ok || v != 100 {
		t.Fatal("overwrite should update value in place")
	}
	if _, ok := rb.Get(k2); !ok {
		t.Fatal("k2 should not have been evicted by an overwrite")
	}
}
