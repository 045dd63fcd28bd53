package light

import "github.com/eth2030/beaconlc/ssz"

// Submit verifies and applies a light-client update (§4.6). Authorisation
// is a signed call per §6.
func (c *LightClient) Submit(update Update) error {
	if err := c.runtime.EnsureSigned(); err != nil {
		return err
	}

	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	s := c.store
	if s.currentSyncCommittee == nil {
		return ErrNotBootstrapped
	}

	latestState, ok := s.finalizedBeaconState.Get(s.latestFinalizedBlockRoot)
	if !ok {
		return ErrNotBootstrapped
	}

	// §4.6.1 Cross-check EL latency.
	if s.latestExecutionState != nil && s.latestExecutionState.BeaconSlot != 0 {
		bound := s.latestExecutionState.BeaconSlot + c.spec.EpochsPerSyncCommitteePeriod*c.spec.SlotsPerEpoch
		if latestState.Slot >= bound {
			return ErrExecutionHeaderTooFarBehind
		}
	}

	stp := computePeriod(c.spec, computeEpoch(c.spec, latestState.Slot))
	sp := computePeriod(c.spec, computeEpoch(c.spec, update.SignatureSlot))

	// §4.6.2.1 Supermajority.
	participants := update.SyncAggregate.PopCount()
	if !meetsQuorum(participants, c.spec.SyncCommitteeSize) {
		return ErrSyncCommitteeParticipantsNotSupermajority
	}

	// §4.6.2.2 Slot ordering: signature_slot > attested.slot >= finalized.slot.
	if !(update.SignatureSlot > update.AttestedHeader.Slot && update.AttestedHeader.Slot >= update.FinalizedHeader.Slot) {
		return ErrInvalidUpdateSlot
	}

	// §4.6.2.3 Period containment.
	if s.nextSyncCommittee != nil {
		if sp != stp && sp != stp+1 {
			return ErrSkippedSyncCommitteePeriod
		}
	} else if sp != stp {
		return ErrSkippedSyncCommitteePeriod
	}

	// §4.6.2.4 Relevance.
	relevant := update.AttestedHeader.Slot > latestState.Slot
	if !relevant && update.NextSyncCommitteeUpdate != nil {
		relevant = computePeriod(c.spec, computeEpoch(c.spec, update.AttestedHeader.Slot)) == stp && s.nextSyncCommittee == nil
	}
	if !relevant {
		return ErrNotRelevant
	}

	attestedHeaderSSZ := ssz.BeaconBlockHeader{
		Slot:          update.AttestedHeader.Slot,
		ProposerIndex: update.AttestedHeader.ProposerIndex,
		ParentRoot:    update.AttestedHeader.ParentRoot,
		StateRoot:     update.AttestedHeader.StateRoot,
		BodyRoot:      update.AttestedHeader.BodyRoot,
	}
	attestedStateRoot := update.AttestedHeader.StateRoot

	// §4.6.2.5 Finality proof.
	finalizedHeaderSSZ := ssz.BeaconBlockHeader{
		Slot:          update.FinalizedHeader.Slot,
		ProposerIndex: update.FinalizedHeader.ProposerIndex,
		ParentRoot:    update.FinalizedHeader.ParentRoot,
		StateRoot:     update.FinalizedHeader.StateRoot,
		BodyRoot:      update.FinalizedHeader.BodyRoot,
	}
	finalizedHeaderRoot := finalizedHeaderSSZ.HashTreeRoot()

	ok, err := c.proofs.Verify(MerkleProof{
		Root:             attestedStateRoot,
		Leaf:             finalizedHeaderRoot,
		Branch:           update.FinalityBranch,
		GeneralizedIndex: c.spec.FinalizedRootGIndex,
		Depth:            c.spec.FinalizedRootDepth,
	})
	if err != nil {
		return &HashTreeRootFailed{Container: "finalized_header", Err: err}
	}
	if !ok {
		return ErrInvalidHeaderMerkleProof
	}

	// §4.6.2.6 Block-roots cache.
	ok, err = c.proofs.Verify(MerkleProof{
		Root:             update.FinalizedHeader.StateRoot,
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

	// §4.6.2.7 Next-committee proof.
	var nextPrepared *SyncCommitteePrepared
	if update.NextSyncCommitteeUpdate != nil {
		nu := update.NextSyncCommitteeUpdate
		nextSSZ := ssz.SyncCommittee{
			Pubkeys:         nu.NextSyncCommittee.Pubkeys,
			AggregatePubkey: nu.NextSyncCommittee.AggregatePubkey,
		}
		scr := nextSSZ.HashTreeRoot()

		ok, err := c.proofs.Verify(MerkleProof{
			Root:             attestedStateRoot,
			Leaf:             scr,
			Branch:           nu.NextSyncCommitteeBranch,
			GeneralizedIndex: c.spec.NextSyncCommitteeGIndex,
			Depth:            c.spec.NextSyncCommitteeDepth,
		})
		if err != nil {
			return &HashTreeRootFailed{Container: "next_sync_committee", Err: err}
		}
		if !ok {
			return ErrInvalidSyncCommitteeMerkleProof
		}
		if computePeriod(c.spec, computeEpoch(c.spec, update.AttestedHeader.Slot)) == stp && s.nextSyncCommittee != nil {
			if scr != s.nextSyncCommittee.Root {
				return ErrInvalidSyncCommitteeUpdate
			}
		}
		nextPrepared, err = prepareSyncCommittee(nu.NextSyncCommittee, scr)
		if err != nil {
			return err
		}
	}

	// §4.6.2.8 Signature.
	var committee *SyncCommitteePrepared
	if sp == stp {
		committee = s.currentSyncCommittee
	} else {
		committee = s.nextSyncCommittee
	}
	if committee == nil {
		return ErrInvalidSyncCommitteeUpdate
	}

	domain := computeDomain(c.spec, update.SignatureSlot, s.validatorsRoot)
	objRoot := attestedHeaderSSZ.HashTreeRoot()
	sigRoot := signingRoot(objRoot, domain)

	if err := c.bls.VerifySyncAggregate(committee, update.SyncAggregate, sigRoot); err != nil {
		return err
	}

	// §4.6.3 Apply.
	if update.NextSyncCommitteeUpdate != nil {
		up := computePeriod(c.spec, computeEpoch(c.spec, update.FinalizedHeader.Slot))
		switch {
		case s.nextSyncCommittee == nil:
			if up != stp {
				return ErrInvalidSyncCommitteeUpdate
			}
			s.nextSyncCommittee = nextPrepared
		case up == stp+1:
			s.currentSyncCommittee = s.nextSyncCommittee
			s.nextSyncCommittee = nextPrepared
		}
		syncCommitteeUpdatesTotal.Inc()
		c.runtime.EmitEvent(SyncCommitteeUpdated{Period: up})
	}

	if update.FinalizedHeader.Slot > latestState.Slot {
		s.finalizedBeaconState.Put(finalizedHeaderRoot, CompactBeaconState{
			Slot:           update.FinalizedHeader.Slot,
			BlockRootsRoot: update.BlockRootsRoot,
		})
		s.latestFinalizedBlockRoot = finalizedHeaderRoot
		finalizedHeadersTotal.Inc()
		c.runtime.EmitEvent(BeaconHeaderImported{BlockRoot: finalizedHeaderRoot, Slot: update.FinalizedHeader.Slot})
	}

	return nil
}
