// proof_verifier.go implements a cached Merkle branch verifier used by the
// checkpoint, update and execution-header processors, each of which checks
// several independent SSZ branches (committee inclusion, finality, block
// roots, ancestry, execution header) against beacon state roots.
package light

import (
	"crypto/sha256"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/eth2030/beaconlc/ssz"
)

// Proof verifier errors.
var (
	ErrProofNilRoot         = errors.New("proof verifier: root must not be zero")
	ErrProofEmptyPath       = errors.New("proof verifier: path must not be empty")
	ErrProofDepthExceeded   = errors.New("proof verifier: proof depth exceeds maximum")
	ErrProofNoLeaves        = errors.New("proof verifier: no leaves provided")
	ErrProofIndexOutOfRange = errors.New("proof verifier: index out of range")
)

// ProofVerifierConfig configures the ProofVerifier.
type ProofVerifierConfig struct {
	// MaxProofDepth is the maximum allowed branch depth.
	MaxProofDepth int
	// CacheSize is the number of verified proofs to cache.
	CacheSize int
}

// DefaultProofVerifierConfig returns sensible defaults for the verifier.
func DefaultProofVerifierConfig() ProofVerifierConfig {
	return ProofVerifierConfig{
		MaxProofDepth: 64,
		CacheSize:     256,
	}
}

// MerkleProof represents a generalized-index Merkle inclusion proof.
type MerkleProof struct {
	Root             [32]byte
	Leaf             [32]byte
	Branch           [][32]byte
	GeneralizedIndex uint64
	Depth            int
}

type proofCacheKey struct {
	root   [32]byte
	leaf   [32]byte
	gindex uint64
}

// ProofVerifier verifies SSZ Merkle branches, memoizing results so that a
// processor checking several branches against the same pair of roots in one
// call does not repeat the hash chain. Safe for concurrent use.
type ProofVerifier struct {
	config ProofVerifierConfig

	mu       sync.RWMutex
	cache    map[proofCacheKey]bool
	verified atomic.Uint64
}

// NewProofVerifier creates a new ProofVerifier with the given config.
func NewProofVerifier(config ProofVerifierConfig) *ProofVerifier {
	if config.MaxProofDepth <= 0 {
		config.MaxProofDepth = 64
	}
	if config.CacheSize <= 0 {
		config.CacheSize = 256
	}
	return &ProofVerifier{
		config: config,
		cache:  make(map[proofCacheKey]bool, config.CacheSize),
	}
}

// Verify checks proof against ssz.VerifyMerkleBranch, caching the result.
func (pv *ProofVerifier) Verify(proof MerkleProof) (bool, error) {
	if proof.Root == ([32]byte{}) {
		return false, ErrProofNilRoot
	}
	if len(proof.Branch) == 0 {
		return false, ErrProofEmptyPath
	}
	if len(proof.Branch) > pv.config.MaxProofDepth {
		return false, ErrProofDepthExceeded
	}

	key := proofCacheKey{root: proof.Root, leaf: proof.Leaf, gindex: proof.GeneralizedIndex}
	pv.mu.RLock()
	if result, ok := pv.cache[key]; ok {
		pv.mu.RUnlock()
		return result, nil
	}
	pv.mu.RUnlock()

	valid := ssz.VerifyMerkleBranch(proof.Leaf, proof.Branch, proof.GeneralizedIndex, proof.Depth, proof.Root)

	pv.mu.Lock()
	pv.cacheResult(key, valid)
	pv.mu.Unlock()

	pv.verified.Add(1)
	return valid, nil
}

// ProofsVerified returns the total number of (non-cache-hit) proofs verified.
func (pv *ProofVerifier) ProofsVerified() uint64 {
	return pv.verified.Load()
}

// cacheResult stores a proof verification result. Must be called with mu held.
func (pv *ProofVerifier) cacheResult(key proofCacheKey, valid bool) {
	if len(pv.cache) >= pv.config.CacheSize {
		for k := range pv.cache {
			delete(pv.cache, k)
			break
		}
	}
	pv.cache[key] = valid
}

// ComputeMerkleRoot computes the root of a power-of-two set of leaves using
// plain binary Merkleization, for tests that need to construct a matching
// branch rather than verify one.
func ComputeMerkleRoot(leaves [][32]byte) [32]byte {
	if len(leaves) == 0 {
		return [32]byte{}
	}
	layer := append([][32]byte(nil), leaves...)
	for len(layer) > 1 {
		next := make([][32]byte, (len(layer)+1)/2)
		for i := 0; i < len(layer); i += 2 {
			if i+1 < len(layer) {
				next[i/2] = pairHash(layer[i], layer[i+1])
			} else {
				next[i/2] = layer[i]
			}
		}
		layer = next
	}
	return layer[0]
}

// BuildMerkleBranch constructs the sibling branch for leaves[index] in a
// power-of-two binary tree, for use by tests constructing matching proofs.
func BuildMerkleBranch(leaves [][32]byte, index uint64) [][32]byte {
	layer := append([][32]byte(nil), leaves...)
	idx := index
	var branch [][32]byte
	for len(layer) > 1 {
		if idx%2 == 0 {
			if int(idx+1) < len(layer) {
				branch = append(branch, layer[idx+1])
			} else {
				branch = append(branch, layer[idx])
			}
		} else {
			branch = append(branch, layer[idx-1])
		}
		next := make([][32]byte, (len(layer)+1)/2)
		for i := 0; i < len(layer); i += 2 {
			if i+1 < len(layer) {
				next[i/2] = pairHash(layer[i], layer[i+1])
			} else {
				next[i/2] = layer[i]
			}
		}
		layer = next
		idx /= 2
	}
	return branch
}

func pairHash(a, b [32]byte) [32]byte {
	h := sha256.New()
	h.Write(a[:])
	h.Write(b[:])
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
