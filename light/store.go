package light

import "sync"

// Store is the light client's singleton persistent state. All three
// processors (checkpoint, update, execution-header) operate under a single
// mutex: each stages its writes locally, runs every check, and only mutates
// Store once every check has passed, giving atomic all-or-nothing semantics
// without a transaction log.
type Store struct {
	mu sync.Mutex

	spec *ChainSpec

	initialCheckpointRoot   [32]byte
	latestFinalizedBlockRoot [32]byte
	finalizedBeaconState    *ringBuffer[CompactBeaconState]

	validatorsRoot [32]byte

	currentSyncCommittee *SyncCommitteePrepared
	nextSyncCommittee    *SyncCommitteePrepared

	latestExecutionState *ExecutionHeaderState
	executionHeaders     *ringBuffer[CompactExecutionHeader]
}

// NewStore creates an empty Store calibrated to spec. Call ForceCheckpoint
// before any other operation.
func NewStore(spec *ChainSpec) *Store {
	return &Store{
		spec:                 spec,
		finalizedBeaconState: newRingBuffer[CompactBeaconState](spec.MaxFinalizedHeadersToKeep),
		executionHeaders:     newRingBuffer[CompactExecutionHeader](spec.MaxExecutionHeadersToKeep),
	}
}

// Bootstrapped reports whether ForceCheckpoint has been applied.
func (s *Store) Bootstrapped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentSyncCommittee != nil
}

// LatestFinalizedBlockRoot returns the block root of the most recently
// accepted finalized header.
func (s *Store) LatestFinalizedBlockRoot() [32]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latestFinalizedBlockRoot
}

// FinalizedBeaconState looks up the compact beacon state recorded for
// blockRoot, if it is still within the ring buffer's retention window.
func (s *Store) FinalizedBeaconState(blockRoot [32]byte) (CompactBeaconState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finalizedBeaconState.Get(blockRoot)
}

// LatestExecutionState returns the most recently accepted execution header
// state, or false if none has been imported yet.
func (s *Store) LatestExecutionState() (ExecutionHeaderState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.latestExecutionState == nil {
		return ExecutionHeaderState{}, false
	}
	return *s.latestExecutionState, true
}

// ExecutionHeader looks up a previously imported execution header by block
// hash, if it is still within the ring buffer's retention window.
func (s *Store) ExecutionHeader(blockHash [32]byte) (CompactExecutionHeader, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.executionHeaders.Get(blockHash)
}
