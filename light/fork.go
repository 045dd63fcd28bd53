package light

import "github.com/eth2030/beaconlc/ssz"

// computeEpoch returns the epoch containing slot.
func computeEpoch(spec *ChainSpec, slot uint64) uint64 {
	return slot / spec.SlotsPerEpoch
}

// computePeriod returns the sync committee period containing epoch.
func computePeriod(spec *ChainSpec, epoch uint64) uint64 {
	return epoch / spec.EpochsPerSyncCommitteePeriod
}

// computeForkVersion scans the fork schedule for the version active at
// epoch: the entry with the greatest activation epoch not exceeding epoch.
// The scan starts from ForkVersions[0] and only replaces it with entries of
// equal or later epoch, so the result is right only when ForkVersions[0] has
// the lowest activation epoch, as in MainnetSpec and MinimalSpec.
func computeForkVersion(spec *ChainSpec, epoch uint64) [4]byte {
	best := spec.ForkVersions[0]
	for _, fv := range spec.ForkVersions {
		if fv.Epoch <= epoch && fv.Epoch >= best.Epoch {
			best = fv
		}
	}
	return best.Version
}

// computeForkDataRoot hashes the (fork_version, genesis_validators_root)
// pair that seeds every signing domain.
func computeForkDataRoot(forkVersion [4]byte, genesisValidatorsRoot [32]byte) [32]byte {
	return ssz.ForkData{
		CurrentVersion:        forkVersion,
		GenesisValidatorsRoot: genesisValidatorsRoot,
	}.HashTreeRoot()
}

// computeDomain derives the signing domain for a sync-committee signature at
// the given slot, given the chain's genesis validators root. domain =
// domain_type(4) || fork_data_root(28); fork_data_root must be the SSZ
// hash_tree_root of ForkData, a Merkleized container root rather than a
// plain hash over concatenated fields, so it is assembled here from
// ssz.ForkData rather than built as a flat byte hash.
func computeDomain(spec *ChainSpec, slot uint64, genesisValidatorsRoot [32]byte) [32]byte {
	epoch := computeEpoch(spec, slot)
	forkVersion := computeForkVersion(spec, epoch)
	forkDataRoot := computeForkDataRoot(forkVersion, genesisValidatorsRoot)

	var domain [32]byte
	copy(domain[:4], spec.DomainSyncCommittee[:])
	copy(domain[4:], forkDataRoot[:28])
	return domain
}

// signingRoot computes the root that a sync committee actually signs: the
// hash_tree_root of SigningData{object_root, domain}, a Merkleized container
// root over the two fields in that order, not a flat domain||object_root
// byte concatenation.
func signingRoot(objectRoot [32]byte, domain [32]byte) [32]byte {
	return ssz.SigningData{
		ObjectRoot: objectRoot,
		Domain:     domain,
	}.HashTreeRoot()
}
