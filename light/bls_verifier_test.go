package light

import (
	"testing"
)

// smallTestSize is a small committee size for fast tests. BLS operations on
// BLS12-381 are computationally expensive with big.Int, so test committees
// stay small.
const smallTestSize = 4

func boolBits(size, participants int) []bool {
	bits := make([]bool, size)
	for i := 0; i < participants && i < size; i++ {
		bits[i] = true
	}
	return bits
}

func TestNewSyncCommitteeBLSVerifier(t *testing.T) {
	v := NewSyncCommitteeBLSVerifier(smallTestSize)
	if v.committeeSize != smallTestSize {
		t.Fatalf("expected committee size %d, got %d", smallTestSize, v.committeeSize)
	}
	if v.ParticipationRate() != 0 {
		t.Fatal("initial participation rate should be 0")
	}
	if v.TotalVerified() != 0 {
		t.Fatal("initial verified count should be 0")
	}
	if v.TotalFailed() != 0 {
		t.Fatal("initial failed count should be 0")
	}
}

func TestAbsentPubkeys(t *testing.T) {
	committee := make([][48]byte, 8)
	for i := range committee {
		committee[i][0] = byte(i + 1)
	}

	absent := absentPubkeys(committee, boolBits(8, 8))
	if len(absent) != 0 {
		t.Fatalf("expected 0 absent, got %d", len(absent))
	}

	absent = absentPubkeys(committee, boolBits(8, 0))
	if len(absent) != 8 {
		t.Fatalf("expected 8 absent, got %d", len(absent))
	}

	absent = absentPubkeys(committee, boolBits(8, 4))
	if len(absent) != 4 {
		t.Fatalf("expected 4 absent, got %d", len(absent))
	}
}

func TestMeetsQuorum(t *testing.T) {
	tests := []struct {
		participants int
		total        int
		want         bool
	}{
		{0, 0, false},
		{0, 3, false},
		{1, 3, false},
		{2, 3, true},
		{3, 3, true},
		{340, 512, false},
		{341, 512, false},
		{342, 512, true},
		{512, 512, true},
	}
	for _, tc := range tests {
		got := meetsQuorum(tc.participants, tc.total)
		if got != tc.want {
			t.Errorf("meetsQuorum(%d, %d) = %v, want %v", tc.participants, tc.total, got, tc.want)
		}
	}
}

func TestMakeBLSTestCommittee(t *testing.T) {
	pubkeys, secrets := MakeBLSTestCommittee(smallTestSize)
	if len(pubkeys) != smallTestSize {
		t.Fatalf("expected %d pubkeys, got %d", smallTestSize, len(pubkeys))
	}
	if len(secrets) != smallTestSize {
		t.Fatalf("expected %d secrets, got %d", smallTestSize, len(secrets))
	}

	seen := make(map[[48]byte]bool)
	for i, pk := range pubkeys {
		if seen[pk] {
			t.Fatalf("duplicate pubkey at index %d", i)
		}
		seen[pk] = true
	}
}

func TestVerifySyncAggregate_Valid(t *testing.T) {
	t.Skip("requires real blst backend for pairing correctness")
	pubkeys, secrets := MakeBLSTestCommittee(smallTestSize)
	v := NewSyncCommitteeBLSVerifier(smallTestSize)

	bits := boolBits(smallTestSize, smallTestSize)
	msg := [32]byte{}
	copy(msg[:], "test signing root")
	sig := SignSyncAggregate(secrets, bits, msg[:])

	prepared := &SyncCommitteePrepared{Pubkeys: pubkeys}
	agg := SyncAggregate{SyncCommitteeBits: bits, Signature: sig}

	if err := v.VerifySyncAggregate(prepared, agg, msg); err != nil {
		t.Fatalf("valid aggregate signature failed verification: %v", err)
	}
	if v.TotalVerified() != 1 {
		t.Fatalf("expected 1 verified, got %d", v.TotalVerified())
	}
	if v.ParticipationRate() != 1.0 {
		t.Fatalf("expected participation rate 1.0, got %f", v.ParticipationRate())
	}
}

func TestVerifySyncAggregate_WrongMessage(t *testing.T) {
	t.Skip("requires real blst backend for pairing correctness")
	pubkeys, secrets := MakeBLSTestCommittee(smallTestSize)
	v := NewSyncCommitteeBLSVerifier(smallTestSize)

	bits := boolBits(smallTestSize, smallTestSize)
	sig := SignSyncAggregate(secrets, bits, []byte("correct message"))

	prepared := &SyncCommitteePrepared{Pubkeys: pubkeys}
	agg := SyncAggregate{SyncCommitteeBits: bits, Signature: sig}
	var wrongMsg [32]byte
	copy(wrongMsg[:], "wrong message")

	if err := v.VerifySyncAggregate(prepared, agg, wrongMsg); err == nil {
		t.Fatal("should reject signature for wrong message")
	}
	if v.TotalFailed() != 1 {
		t.Fatalf("expected 1 failed, got %d", v.TotalFailed())
	}
}

func TestVerifySyncAggregate_InsufficientQuorum(t *testing.T) {
	pubkeys, _ := MakeBLSTestCommittee(smallTestSize)
	v := NewSyncCommitteeBLSVerifier(smallTestSize)

	// Only 1 out of 4 participates: 25% < 66.7%.
	bits := boolBits(smallTestSize, 1)
	prepared := &SyncCommitteePrepared{Pubkeys: pubkeys}
	agg := SyncAggregate{SyncCommitteeBits: bits}

	err := v.VerifySyncAggregate(prepared, agg, [32]byte{})
	if err != ErrSyncCommitteeParticipantsNotSupermajority {
		t.Fatalf("expected quorum error, got %v", err)
	}
	if v.TotalFailed() != 1 {
		t.Fatalf("expected 1 failed, got %d", v.TotalFailed())
	}
}

func TestVerifySyncAggregate_WrongCommitteeSize(t *testing.T) {
	pubkeys, _ := MakeBLSTestCommittee(smallTestSize)
	v := NewSyncCommitteeBLSVerifier(smallTestSize + 1)

	bits := boolBits(smallTestSize, smallTestSize)
	prepared := &SyncCommitteePrepared{Pubkeys: pubkeys}
	agg := SyncAggregate{SyncCommitteeBits: bits}

	if err := v.VerifySyncAggregate(prepared, agg, [32]byte{}); err != ErrBLSPreparePublicKeysFailed {
		t.Fatalf("expected size mismatch error, got %v", err)
	}
}

func TestVerifySyncAggregate_NoParticipants(t *testing.T) {
	pubkeys, _ := MakeBLSTestCommittee(smallTestSize)
	v := NewSyncCommitteeBLSVerifier(smallTestSize)

	bits := boolBits(smallTestSize, 0)
	prepared := &SyncCommitteePrepared{Pubkeys: pubkeys}
	agg := SyncAggregate{SyncCommitteeBits: bits}

	if err := v.VerifySyncAggregate(prepared, agg, [32]byte{}); err == nil {
		t.Fatal("should reject zero participants")
	}
}
