package light

// BLS-based sync committee signature verifier.
//
// Verifies sync committee signatures via the absent-signer optimisation:
// rather than summing the public keys of every participant (hundreds of G1
// additions), the known aggregate public key for the full committee has the
// absent members' keys subtracted out, which is cheap in the overwhelmingly
// common case of near-unanimous participation.

import (
	"math/big"

	"github.com/eth2030/beaconlc/crypto"
)

// MinQuorumNumerator and MinQuorumDenominator define the minimum
// participation threshold: at least 2/3 of the committee must sign.
const (
	MinQuorumNumerator   = 2
	MinQuorumDenominator = 3
)

// SyncCommitteeBLSVerifier verifies sync committee aggregate signatures
// against a prepared committee, tracking simple counters for observability.
type SyncCommitteeBLSVerifier struct {
	committeeSize int

	participationRate float64
	totalVerified     uint64
	totalFailed       uint64
}

// NewSyncCommitteeBLSVerifier creates a verifier for a committee of the
// given size.
func NewSyncCommitteeBLSVerifier(committeeSize int) *SyncCommitteeBLSVerifier {
	return &SyncCommitteeBLSVerifier{committeeSize: committeeSize}
}

// VerifySyncAggregate verifies a SyncAggregate against a prepared committee
// and a signing root, using the absent-signer subtraction scheme. It
// returns ErrSyncCommitteeParticipantsNotSupermajority if fewer than 2/3 of
// the committee signed, and a *BLSVerificationFailed wrapping the
// underlying crypto error if the pairing check fails.
func (v *SyncCommitteeBLSVerifier) VerifySyncAggregate(
	committee *SyncCommitteePrepared,
	agg SyncAggregate,
	signingRoot [32]byte,
) error {
	if len(agg.SyncCommitteeBits) != v.committeeSize || len(committee.Pubkeys) != v.committeeSize {
		v.totalFailed++
		return ErrBLSPreparePublicKeysFailed
	}

	participants := agg.PopCount()
	if !meetsQuorum(participants, v.committeeSize) {
		v.totalFailed++
		return ErrSyncCommitteeParticipantsNotSupermajority
	}
	v.participationRate = float64(participants) / float64(v.committeeSize)

	absent := absentPubkeys(committee.Pubkeys, agg.SyncCommitteeBits)
	if err := crypto.DefaultBLSBackend().FastAggregateVerifyWithAbsent(
		committee.AggregatePubkey, absent, signingRoot[:], agg.Signature,
	); err != nil {
		v.totalFailed++
		return &BLSVerificationFailed{Err: err}
	}

	v.totalVerified++
	return nil
}

// ParticipationRate returns the participation rate from the last verified
// signature (0.0 to 1.0).
func (v *SyncCommitteeBLSVerifier) ParticipationRate() float64 { return v.participationRate }

// TotalVerified returns the total number of successfully verified updates.
func (v *SyncCommitteeBLSVerifier) TotalVerified() uint64 { return v.totalVerified }

// TotalFailed returns the total number of failed verification attempts.
func (v *SyncCommitteeBLSVerifier) TotalFailed() uint64 { return v.totalFailed }

// absentPubkeys returns the public keys of committee members whose bit is
// clear in bits.
func absentPubkeys(committee [][48]byte, bits []bool) [][48]byte {
	var absent [][48]byte
	for i, pk := range committee {
		if !bits[i] {
			absent = append(absent, pk)
		}
	}
	return absent
}

// meetsQuorum checks if the participation count meets the 2/3 threshold,
// avoiding floating point: participants*3 >= total*2.
func meetsQuorum(participants, total int) bool {
	if total == 0 {
		return false
	}
	return participants*MinQuorumDenominator >= total*MinQuorumNumerator
}

// MakeBLSTestCommittee creates a test sync committee with deterministic BLS
// key pairs, for use by tests constructing a CheckpointUpdate/Update. Returns
// the public keys and corresponding secret keys.
func MakeBLSTestCommittee(size int) ([][48]byte, []*big.Int) {
	pubkeys := make([][48]byte, size)
	secrets := make([]*big.Int, size)
	for i := 0; i < size; i++ {
		secret := make([]byte, 32)
		secret[31] = byte(i + 1)
		if i >= 255 {
			secret[30] = byte((i + 1) >> 8)
		}
		sk := new(big.Int).SetBytes(secret)
		secrets[i] = sk
		pubkeys[i] = crypto.BLSPubkeyFromSecret(sk)
	}
	return pubkeys, secrets
}

// SignSyncAggregate creates a BLS aggregate signature for a sync committee
// update in tests: the participating members (indicated by bits) each sign
// msg, and their signatures are aggregated.
func SignSyncAggregate(secrets []*big.Int, bits []bool, msg []byte) [96]byte {
	var sigs [][96]byte
	for i, sk := range secrets {
		if i < len(bits) && bits[i] {
			sigs = append(sigs, crypto.BLSSign(sk, msg))
		}
	}
	if len(sigs) == 0 {
		return [96]byte{}
	}
	return crypto.AggregateSignatures(sigs)
}
