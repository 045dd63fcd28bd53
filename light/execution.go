package light

import "github.com/eth2030/beaconlc/ssz"

// SubmitExecutionHeader verifies and applies an execution-layer header
// update (§4.7). Authorisation is a signed call per §6. Preconditions: the
// store must already be bootstrapped with a finalized state.
func (c *LightClient) SubmitExecutionHeader(update ExecutionHeaderUpdate) error {
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

	// Step 1: header must be at or before the latest finalized slot.
	if update.Header.Slot > latestState.Slot {
		return ErrHeaderNotFinalized
	}

	// Step 2: execution headers must be contiguous by block number.
	if s.latestExecutionState != nil && s.latestExecutionState.BlockNumber != 0 {
		if update.ExecutionHeader.BlockNumber != s.latestExecutionState.BlockNumber+1 {
			return ErrExecutionHeaderSkippedSlot
		}
	}

	// Step 3: exec_root must verify against the beacon body root.
	execRoot := update.ExecutionHeader.HashTreeRoot()
	ok, err := c.proofs.Verify(MerkleProof{
		Root:             update.Header.BodyRoot,
		Leaf:             execRoot,
		Branch:           update.ExecutionBranch,
		GeneralizedIndex: c.spec.ExecutionHeaderGIndex,
		Depth:            c.spec.ExecutionHeaderDepth,
	})
	if err != nil {
		return &HashTreeRootFailed{Container: "execution_header", Err: err}
	}
	if !ok {
		return ErrInvalidExecutionHeaderProof
	}

	// Step 4: anchor the beacon header to finalized state.
	headerSSZ := ssz.BeaconBlockHeader{
		Slot:          update.Header.Slot,
		ProposerIndex: update.Header.ProposerIndex,
		ParentRoot:    update.Header.ParentRoot,
		StateRoot:     update.Header.StateRoot,
		BodyRoot:      update.Header.BodyRoot,
	}
	blockRoot := headerSSZ.HashTreeRoot()

	if update.AncestryProof != nil {
		ap := update.AncestryProof
		anchorState, ok := s.finalizedBeaconState.Get(ap.FinalizedBlockRoot)
		if !ok {
			return ErrExpectedFinalizedHeaderNotStored
		}
		if update.Header.Slot >= anchorState.Slot {
			return ErrHeaderNotFinalized
		}
		leafIndex := c.spec.SlotsPerHistoricalRoot + (update.Header.Slot % c.spec.SlotsPerHistoricalRoot)
		ok, err := c.proofs.Verify(MerkleProof{
			Root:             anchorState.BlockRootsRoot,
			Leaf:             blockRoot,
			Branch:           ap.HeaderBranch,
			GeneralizedIndex: leafIndex,
			Depth:            c.spec.BlockRootAtIndexDepth,
		})
		if err != nil {
			return &HashTreeRootFailed{Container: "ancestry", Err: err}
		}
		if !ok {
			return ErrInvalidAncestryMerkleProof
		}
	} else {
		direct, ok := s.finalizedBeaconState.Get(blockRoot)
		if !ok || direct.Slot != update.Header.Slot {
			return ErrExpectedFinalizedHeaderNotStored
		}
	}

	// Step 5: commit.
	var logsBloom [256]byte
	copy(logsBloom[:], update.ExecutionHeader.LogsBloom)
	compact := CompactExecutionHeader{
		ParentHash:   update.ExecutionHeader.ParentHash,
		StateRoot:    update.ExecutionHeader.StateRoot,
		ReceiptsRoot: update.ExecutionHeader.ReceiptsRoot,
		BlockNumber:  update.ExecutionHeader.BlockNumber,
		BlockHash:    update.ExecutionHeader.BlockHash,
		LogsBloom:    logsBloom,
	}
	s.executionHeaders.Put(compact.BlockHash, compact)
	s.latestExecutionState = &ExecutionHeaderState{
		BeaconBlockRoot: blockRoot,
		BeaconSlot:      update.Header.Slot,
		BlockHash:       compact.BlockHash,
		BlockNumber:     compact.BlockNumber,
	}

	executionHeadersTotal.Inc()
	c.runtime.EmitEvent(ExecutionHeaderImported{BlockHash: compact.BlockHash, BlockNumber: compact.BlockNumber})
	return nil
}

// GetExecutionHeader is the downstream read surface for the log/receipt
// verifier (§6): returns the compact execution header for blockHash, if
// still retained.
func (c *LightClient) GetExecutionHeader(blockHash [32]byte) (CompactExecutionHeader, bool) {
	return c.store.ExecutionHeader(blockHash)
}
