package light

import (
	"testing"

	"github.com/eth2030/beaconlc/core/types"
)

func TestMayContainLog_NotFound(t *testing.T) {
	lc := NewLightClient(MinimalSpec(), NewMemoryRuntime())
	_, found := lc.MayContainLog([32]byte{1}, [20]byte{}, nil)
	if found {
		t.Fatal("expected found=false for an unknown block hash")
	}
}

func TestMayContainLog_MatchesAddedAddress(t *testing.T) {
	var bloom types.Bloom
	addr := [20]byte{0xAA, 0xBB}
	types.BloomAdd(&bloom, addr[:])

	lc := NewLightClient(MinimalSpec(), NewMemoryRuntime())
	blockHash := [32]byte{9}
	lc.store.executionHeaders.Put(blockHash, CompactExecutionHeader{
		BlockHash: blockHash,
		LogsBloom: [256]byte(bloom),
	})

	mayContain, found := lc.MayContainLog(blockHash, addr, nil)
	if !found {
		t.Fatal("expected found=true")
	}
	if !mayContain {
		t.Fatal("expected mayContain=true for an address actually added to the bloom")
	}

	other := [20]byte{0xCC, 0xDD}
	mayContain, _ = lc.MayContainLog(blockHash, other, nil)
	if mayContain {
		t.Fatal("expected mayContain=false for an address never added to the bloom")
	}
}

func TestMayContainLog_RequiresAllTopics(t *testing.T) {
	var bloom types.Bloom
	addr := [20]byte{0x01}
	topic1 := [32]byte{0x02}
	topic2 := [32]byte{0x03}
	types.BloomAdd(&bloom, addr[:])
	types.BloomAdd(&bloom, topic1[:])
	// topic2 intentionally not added.

	lc := NewLightClient(MinimalSpec(), NewMemoryRuntime())
	blockHash := [32]byte{7}
	lc.store.executionHeaders.Put(blockHash, CompactExecutionHeader{
		BlockHash: blockHash,
		LogsBloom: [256]byte(bloom),
	})

	if mayContain, _ := lc.MayContainLog(blockHash, addr, [][32]byte{topic1}); !mayContain {
		t.Fatal("expected mayContain=true when address and present topic match")
	}
	if mayContain, _ := lc.MayContainLog(blockHash, addr, [][32]byte{topic1, topic2}); mayContain {
		t.Fatal("expected mayContain=false when one topic was never added")
	}
}
