package light

import "testing"

func TestSyncAggregatePopCount(t *testing.T) {
	tests := []struct {
		bits  []bool
		count int
	}{
		{nil, 0},
		{[]bool{false, false}, 0},
		{[]bool{true, false, true}, 2},
		{[]bool{true, true, true, true}, 4},
	}
	for i, tt := range tests {
		a := SyncAggregate{SyncCommitteeBits: tt.bits}
		if got := a.PopCount(); got != tt.count {
			t.Errorf("test %d: PopCount = %d, want %d", i, got, tt.count)
		}
	}
}

func TestPrepareSyncCommitteeRejectsInvalidPubkey(t *testing.T) {
	var bad [48]byte // all-zero is not a valid compressed G1 point
	sc := SyncCommittee{Pubkeys: [][48]byte{bad}, AggregatePubkey: bad}
	if _, err := prepareSyncCommittee(sc, [32]byte{}); err != ErrBLSPreparePublicKeysFailed {
		t.Fatalf("expected ErrBLSPreparePublicKeysFailed, got %v", err)
	}
}

func TestPrepareSyncCommitteeRejectsDuplicatePubkey(t *testing.T) {
	pubkeys, _ := MakeBLSTestCommittee(4)
	pubkeys[3] = pubkeys[0] // duplicate an otherwise-valid key
	sc := SyncCommittee{Pubkeys: pubkeys, AggregatePubkey: pubkeys[0]}
	if _, err := prepareSyncCommittee(sc, [32]byte{}); err != ErrDuplicateSyncCommitteePubkeys {
		t.Fatalf("expected ErrDuplicateSyncCommitteePubkeys, got %v", err)
	}
}

func TestPrepareSyncCommitteeAcceptsValidKeys(t *testing.T) {
	pubkeys, _ := MakeBLSTestCommittee(4)
	agg := pubkeys[0]
	sc := SyncCommittee{Pubkeys: pubkeys, AggregatePubkey: agg}
	prepared, err := prepareSyncCommittee(sc, [32]byte{9})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prepared.Root != ([32]byte{9}) {
		t.Fatal("root should be passed through unchanged")
	}
	if len(prepared.Pubkeys) != 4 {
		t.Fatalf("expected 4 pubkeys, got %d", len(prepared.Pubkeys))
	}
}
