package light

import "github.com/eth2030/beaconlc/ssz"

// ForceCheckpoint bootstraps (or re-bootstraps) the store from a trusted
// committee snapshot. Authorisation is root-only per §6; the Runtime is
// asked to authorise the call before anything else happens.
func (c *LightClient) ForceCheckpoint(update CheckpointUpdate) error {
	if err := c.runtime.EnsureRoot(); err != nil {
		return err
	}

	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	syncCommitteeSSZ := ssz.SyncCommittee{
		Pubkeys:         update.CurrentSyncCommittee.Pubkeys,
		AggregatePubkey: update.CurrentSyncCommittee.AggregatePubkey,
	}
	syncCommitteeRoot := syncCommitteeSSZ.HashTreeRoot()

	headerSSZ := ssz.BeaconBlockHeader{
		Slot:          update.Header.Slot,
		ProposerIndex: update.Header.ProposerIndex,
		ParentRoot:    update.Header.ParentRoot,
		StateRoot:     update.Header.StateRoot,
		BodyRoot:      update.Header.BodyRoot,
	}

	ok, err := c.proofs.Verify(MerkleProof{
		Root:             update.Header.StateRoot,
		Leaf:             syncCommitteeRoot,
		Branch:           update.CurrentSyncCommitteeBranch,
		GeneralizedIndex: c.spec.CurrentSyncCommitteeGIndex,
		Depth:            c.spec.CurrentSyncCommitteeDepth,
	})
	if err != nil {
		return &HashTreeRootFailed{Container: "current_sync_committee", Err: err}
	}
	if !ok {
		return ErrInvalidSyncCommitteeMerkleProof
	}

	headerRoot := headerSSZ.HashTreeRoot()

	ok, err = c.proofs.Verify(MerkleProof{
		Root:             update.Header.StateRoot,
		Leaf:             update.BlockRootsRoot,
		Branch:           update.BlockRootsBranch,
		GeneralizedIndex: c.spec.BlockRootsGIndex,
		Depth:            c.spec.BlockRootsDepth,
	})
	if err != nil {
		return &HashTreeRootFailed{Container: "block_roots", Err: err}
	}
	if !ok {
		return ErrInvalidBlockRootsRootMerkleProof
	}

	prepared, err := prepareSyncCommittee(update.CurrentSyncCommittee, syncCommitteeRoot)
	if err != nil {
		return err
	}

	s := c.store
	s.currentSyncCommittee = prepared
	s.nextSyncCommittee = nil
	s.initialCheckpointRoot = headerRoot
	s.latestExecutionState = nil
	s.validatorsRoot = update.ValidatorsRoot

	s.finalizedBeaconState.Put(headerRoot, CompactBeaconState{
		Slot:           update.Header.Slot,
		BlockRootsRoot: update.BlockRootsRoot,
	})
	s.latestFinalizedBlockRoot = headerRoot

	finalizedHeadersTotal.Inc()
	c.runtime.EmitEvent(BeaconHeaderImported{BlockRoot: headerRoot, Slot: update.Header.Slot})
	return nil
}
