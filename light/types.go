// Package light implements an on-chain Ethereum beacon light client: given a
// trusted checkpoint it verifies sync-committee-signed updates and anchors
// execution-layer headers to the resulting finalized beacon state, without
// ever downloading a full beacon node's state or fork-choosing on its own.
package light

import (
	"github.com/eth2030/beaconlc/crypto"
	"github.com/eth2030/beaconlc/ssz"
)

// BeaconHeader is the SSZ-hashable beacon block header that sync-committee
// signatures attest to.
type BeaconHeader struct {
	Slot          uint64
	ProposerIndex uint64
	ParentRoot    [32]byte
	StateRoot     [32]byte
	BodyRoot      [32]byte
}

// SyncCommittee is the wire form of a sync committee: N compressed BLS
// public keys plus their aggregate.
type SyncCommittee struct {
	Pubkeys         [][48]byte
	AggregatePubkey [48]byte
}

// SyncCommitteePrepared is the validated form of a SyncCommittee: every
// public key and the aggregate were checked to decode to G1 points when the
// committee was accepted. The keys stay in compressed form, so signature
// verification decompresses the aggregate and the absent members' keys again
// on each call. Root is the SSZ hash of the original SyncCommittee, cached to
// cheaply compare committee identity against an incoming branch without
// recomputing hash_tree_root.
type SyncCommitteePrepared struct {
	Root            [32]byte
	Pubkeys         [][48]byte // validated, on-curve compressed points
	AggregatePubkey [48]byte
}

// SyncAggregate carries the participation bitfield and aggregate BLS
// signature attached to a light-client update. Bit i set means member i
// signed.
type SyncAggregate struct {
	SyncCommitteeBits []bool
	Signature         [96]byte
}

// PopCount returns the number of participating signers.
func (a SyncAggregate) PopCount() int {
	n := 0
	for _, b := range a.SyncCommitteeBits {
		if b {
			n++
		}
	}
	return n
}

// CompactBeaconState is what's retained for each accepted finalized header.
type CompactBeaconState struct {
	Slot           uint64
	BlockRootsRoot [32]byte
}

// CompactExecutionHeader is the minimal subset of an execution payload
// header the downstream log/receipt verifier needs. LogsBloom is retained
// so that presence of a given address/topic can be ruled out without
// fetching the full block's receipts.
type CompactExecutionHeader struct {
	ParentHash   [32]byte
	StateRoot    [32]byte
	ReceiptsRoot [32]byte
	BlockNumber  uint64
	BlockHash    [32]byte
	LogsBloom    [256]byte
}

// ExecutionHeaderState is the singleton record of the most recently accepted
// execution-layer header.
type ExecutionHeaderState struct {
	BeaconBlockRoot [32]byte
	BeaconSlot      uint64
	BlockHash       [32]byte
	BlockNumber     uint64
}

// AncestryProof anchors an execution-header update to a finalized beacon
// state older than the latest one, via the BLOCK_ROOTS historical vector.
// Its presence/absence is the only variant-typed input in the core.
type AncestryProof struct {
	HeaderBranch       [][32]byte
	FinalizedBlockRoot [32]byte
}

// CheckpointUpdate bootstraps trust from a committee snapshot whose
// authenticity is attested out-of-band (the call is root-authorised).
type CheckpointUpdate struct {
	Header                     BeaconHeader
	CurrentSyncCommittee       SyncCommittee
	CurrentSyncCommitteeBranch [][32]byte
	ValidatorsRoot             [32]byte
	ImportTime                 uint64
	BlockRootsRoot             [32]byte
	BlockRootsBranch           [][32]byte
}

// NextSyncCommitteeUpdate carries a newly rotated-in committee together with
// its Merkle proof against the attested header's state root.
type NextSyncCommitteeUpdate struct {
	NextSyncCommittee       SyncCommittee
	NextSyncCommitteeBranch [][32]byte
}

// Update is a light-client update: an attested header signed by the sync
// committee, an optional next-committee rotation, and the finalized header
// the attested header's finality branch proves.
type Update struct {
	AttestedHeader          BeaconHeader
	SyncAggregate           SyncAggregate
	SignatureSlot           uint64
	NextSyncCommitteeUpdate *NextSyncCommitteeUpdate
	FinalizedHeader         BeaconHeader
	FinalityBranch          [][32]byte
	BlockRootsRoot          [32]byte
	BlockRootsBranch        [][32]byte
}

// ExecutionHeaderUpdate anchors an execution-layer header to verified beacon
// state, either directly (header slot matches a stored finalized state) or
// via an ancestry proof into an older finalized state's historical roots.
// ExecutionHeader carries every SSZ field needed to recompute exec_root; only
// the subset in CompactExecutionHeader is retained in the store afterward.
type ExecutionHeaderUpdate struct {
	Header          BeaconHeader
	ExecutionHeader ssz.ExecutionPayloadHeader
	ExecutionBranch [][32]byte
	AncestryProof   *AncestryProof
}

// Events emitted by the three entry points; a Runtime implementation is
// responsible for actually delivering these to its host chain.
type (
	// BeaconHeaderImported is emitted whenever a new finalized header is
	// accepted into the store.
	BeaconHeaderImported struct {
		BlockRoot [32]byte
		Slot      uint64
	}
	// ExecutionHeaderImported is emitted whenever a new execution header is
	// accepted into the store.
	ExecutionHeaderImported struct {
		BlockHash   [32]byte
		BlockNumber uint64
	}
	// SyncCommitteeUpdated is emitted whenever an accepted update carries a
	// next sync committee, whether or not the stored committees change.
	SyncCommitteeUpdated struct {
		Period uint64
	}
)

// prepareSyncCommittee checks that every pubkey in sc and its aggregate
// decode to G1 points and returns the SyncCommitteePrepared form, carrying
// the caller-supplied SSZ root, used thereafter for absent-signer
// verification (§4.1/§9). A duplicated
// pubkey would let one key count as multiple independent signers toward
// quorum, so committees carrying one are rejected outright.
func prepareSyncCommittee(sc SyncCommittee, root [32]byte) (*SyncCommitteePrepared, error) {
	if crypto.NewBLSAgg().HasDuplicatePubkeys(sc.Pubkeys) {
		return nil, ErrDuplicateSyncCommitteePubkeys
	}
	for _, pk := range sc.Pubkeys {
		if crypto.DeserializeG1(pk) == nil {
			return nil, ErrBLSPreparePublicKeysFailed
		}
	}
	if crypto.DeserializeG1(sc.AggregatePubkey) == nil {
		return nil, ErrBLSPreparePublicKeysFailed
	}
	return &SyncCommitteePrepared{
		Root:            root,
		Pubkeys:         sc.Pubkeys,
		AggregatePubkey: sc.AggregatePubkey,
	}, nil
}
