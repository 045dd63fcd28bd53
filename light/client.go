package light

import "github.com/eth2030/beaconlc/log"

// LightClient is the top-level entry point wrapping the persistent Store,
// chain configuration, BLS/Merkle verifiers, host Runtime and logger. It
// exposes exactly the three calls described in §6: ForceCheckpoint, Submit
// and SubmitExecutionHeader.
type LightClient struct {
	store   *Store
	spec    *ChainSpec
	runtime Runtime
	bls     *SyncCommitteeBLSVerifier
	proofs  *ProofVerifier
	log     *log.Logger
}

// NewLightClient creates a fresh, unbootstrapped LightClient calibrated to
// spec. Call ForceCheckpoint before Submit or SubmitExecutionHeader.
func NewLightClient(spec *ChainSpec, runtime Runtime) *LightClient {
	return &LightClient{
		store:   NewStore(spec),
		spec:    spec,
		runtime: runtime,
		bls:     NewSyncCommitteeBLSVerifier(spec.SyncCommitteeSize),
		proofs:  NewProofVerifier(DefaultProofVerifierConfig()),
		log:     log.Default().Module("light"),
	}
}

// Store exposes the underlying persistent state for read-only inspection
// (e.g. by the downstream log/receipt verifier or a CLI status command).
func (c *LightClient) Store() *Store { return c.store }
