package light

import "errors"

// Sentinel errors returned by the checkpoint, update and execution-header
// processors. Every rejection path returns one of these (or a wrapper type
// below), never a bare fmt.Errorf, so callers can switch on errors.Is.
var (
	ErrNotBootstrapped                           = errors.New("light: store has no checkpoint, call ForceCheckpoint first")
	ErrAlreadyBootstrapped                       = errors.New("light: store already has a checkpoint")
	ErrSyncCommitteeParticipantsNotSupermajority = errors.New("light: sync committee participants below 2/3 supermajority")
	ErrInvalidUpdateSlot                         = errors.New("light: update slots do not satisfy signature_slot > attested_slot >= finalized_slot")
	ErrSkippedSyncCommitteePeriod                = errors.New("light: update signature slot skips a sync committee period boundary")
	ErrNotRelevant                                = errors.New("light: update is not more recent than stored state and carries no new sync committee")
	ErrInvalidSyncCommitteeUpdate                 = errors.New("light: next sync committee present without being due, or missing when due")
	ErrInvalidHeaderMerkleProof                   = errors.New("light: finalized header branch does not verify against attested state root")
	ErrInvalidSyncCommitteeMerkleProof             = errors.New("light: sync committee branch does not verify against attested state root")
	ErrInvalidBlockRootsRootMerkleProof            = errors.New("light: block_roots branch does not verify against finalized state root")
	ErrInvalidAncestryMerkleProof                  = errors.New("light: ancestry branch does not verify against the referenced finalized block_roots root")
	ErrInvalidExecutionHeaderProof                 = errors.New("light: execution header branch does not verify against the beacon body root")
	ErrExpectedFinalizedHeaderNotStored            = errors.New("light: ancestry proof references a finalized block root not present in the store")
	ErrHeaderNotFinalized                          = errors.New("light: execution header slot is not covered by the finalized beacon state it is checked against")
	ErrExecutionHeaderSkippedSlot                  = errors.New("light: execution header block number is not the successor of the previously imported one")
	ErrExecutionHeaderTooFarBehind                 = errors.New("light: execution header slot too far behind latest finalized state")
	ErrBLSPreparePublicKeysFailed                  = errors.New("light: one or more sync committee public keys is not a valid, on-curve BLS12-381 G1 point")
	ErrDuplicateSyncCommitteePubkeys                = errors.New("light: sync committee contains a duplicate public key")
)

// BLSVerificationFailed wraps the underlying crypto-layer verification error
// so callers can distinguish "signature didn't verify" from "inputs were
// malformed" while still unwrapping to the crypto sentinel for errors.Is.
type BLSVerificationFailed struct {
	Err error
}

func (e *BLSVerificationFailed) Error() string {
	return "light: sync committee signature verification failed: " + e.Err.Error()
}

func (e *BLSVerificationFailed) Unwrap() error { return e.Err }

// HashTreeRootFailed reports which container's branch verification the
// caller should inspect when a proof rejection needs more context than the
// bare sentinel gives (e.g. in logs).
type HashTreeRootFailed struct {
	Container string
	Err       error
}

func (e *HashTreeRootFailed) Error() string {
	return "light: " + e.Container + " merkle proof rejected: " + e.Err.Error()
}

func (e *HashTreeRootFailed) Unwrap() error { return e.Err }
