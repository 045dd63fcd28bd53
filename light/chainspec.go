package light

// ChainSpec carries the constants the verification pipeline needs from host
// configuration: slot/epoch/period arithmetic, the fixed Merkle subtree
// indices and depths used by every proof in the update and execution-header
// processors, committee sizing, ring-buffer capacities and the fork schedule.
// Unlike consensus.ConsensusConfig (slot timing only), ChainSpec is the
// light-client-specific configuration surface.
type ChainSpec struct {
	SlotsPerEpoch               uint64
	EpochsPerSyncCommitteePeriod uint64
	SlotsPerHistoricalRoot      uint64
	SyncCommitteeSize           int

	MaxFinalizedHeadersToKeep int
	MaxExecutionHeadersToKeep int

	DomainSyncCommittee [4]byte

	ForkVersions []ForkVersionEntry

	// Merkle subtree indices and depths, fixed per beacon-state layout.
	CurrentSyncCommitteeGIndex uint64
	CurrentSyncCommitteeDepth  int
	NextSyncCommitteeGIndex    uint64
	NextSyncCommitteeDepth     int
	FinalizedRootGIndex        uint64
	FinalizedRootDepth         int
	BlockRootsGIndex           uint64
	BlockRootsDepth            int
	ExecutionHeaderGIndex      uint64
	ExecutionHeaderDepth       int
	// BlockRootAtIndexDepth is the depth of a single leaf within the
	// BLOCK_ROOTS vector (§4.7); the generalized index for slot s is computed
	// at verify time as SlotsPerHistoricalRoot + s mod SlotsPerHistoricalRoot,
	// relative to the BLOCK_ROOTS vector root, so only the depth is fixed here.
	BlockRootAtIndexDepth int
}

// ForkVersionEntry maps a fork's activation epoch to its 4-byte version.
type ForkVersionEntry struct {
	Name    string
	Epoch   uint64
	Version [4]byte
}

// DomainSyncCommittee is the 4-byte domain type for sync-committee
// signatures, fixed by the Ethereum consensus spec.
var domainSyncCommittee = [4]byte{0x07, 0x00, 0x00, 0x00}

// MainnetSpec returns the ChainSpec calibrated to Ethereum mainnet constants:
// 512-member sync committees, 32 slots/epoch, 256 epochs/period (8192
// slots/period), and the genesis→altair→bellatrix→capella fork schedule.
func MainnetSpec() *ChainSpec {
	return &ChainSpec{
		SlotsPerEpoch:                32,
		EpochsPerSyncCommitteePeriod: 256,
		SlotsPerHistoricalRoot:       8192,
		SyncCommitteeSize:            512,

		MaxFinalizedHeadersToKeep: 2 * 256,
		MaxExecutionHeadersToKeep: 8192,

		DomainSyncCommittee: domainSyncCommittee,

		ForkVersions: []ForkVersionEntry{
			{Name: "genesis", Epoch: 0, Version: [4]byte{0x00, 0x00, 0x00, 0x00}},
			{Name: "altair", Epoch: 74240, Version: [4]byte{0x01, 0x00, 0x00, 0x00}},
			{Name: "bellatrix", Epoch: 144896, Version: [4]byte{0x02, 0x00, 0x00, 0x00}},
			{Name: "capella", Epoch: 194048, Version: [4]byte{0x03, 0x00, 0x00, 0x00}},
		},

		// BeaconState field generalized indices (Altair/Capella layout).
		CurrentSyncCommitteeGIndex: 54,
		CurrentSyncCommitteeDepth:  5,
		NextSyncCommitteeGIndex:    55,
		NextSyncCommitteeDepth:     5,
		FinalizedRootGIndex:        105,
		FinalizedRootDepth:         6,
		BlockRootsGIndex:           37,
		BlockRootsDepth:            5,
		ExecutionHeaderGIndex:      25,
		ExecutionHeaderDepth:       4,
		BlockRootAtIndexDepth:      13,
	}
}

// MinimalSpec returns a small-committee ChainSpec suitable for fast tests:
// an 8-member committee, 4 slots/epoch, 4 epochs/period (16 slots/period).
// Tree depths are recomputed for the smaller vector sizes.
func MinimalSpec() *ChainSpec {
	return &ChainSpec{
		SlotsPerEpoch:                4,
		EpochsPerSyncCommitteePeriod: 4,
		SlotsPerHistoricalRoot:       64,
		SyncCommitteeSize:            8,

		MaxFinalizedHeadersToKeep: 2 * 4,
		MaxExecutionHeadersToKeep: 64,

		DomainSyncCommittee: domainSyncCommittee,

		ForkVersions: []ForkVersionEntry{
			{Name: "genesis", Epoch: 0, Version: [4]byte{0x00, 0x00, 0x00, 0x01}},
			{Name: "altair", Epoch: 1, Version: [4]byte{0x01, 0x00, 0x00, 0x01}},
		},

		CurrentSyncCommitteeGIndex: 54,
		CurrentSyncCommitteeDepth:  5,
		NextSyncCommitteeGIndex:    55,
		NextSyncCommitteeDepth:     5,
		FinalizedRootGIndex:        105,
		FinalizedRootDepth:         6,
		BlockRootsGIndex:           37,
		BlockRootsDepth:            5,
		ExecutionHeaderGIndex:      25,
		ExecutionHeaderDepth:       4,
		BlockRootAtIndexDepth:      6,
	}
}

// SyncCommitteeBitsLen returns B = ceil(N/8), the byte length of a
// SyncAggregate's participation bitfield.
func (c *ChainSpec) SyncCommitteeBitsLen() int {
	return (c.SyncCommitteeSize + 7) / 8
}
