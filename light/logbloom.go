package light

import "github.com/eth2030/beaconlc/core/types"

// MayContainLog reports whether the execution header stored for blockHash
// could contain a log emitted by address, optionally matching every given
// topic. A false result is definitive (the log was not emitted in that
// block); a true result means the receipts themselves must still be fetched
// and checked, since bloom filters admit false positives. Returns false,
// false if no header is stored for blockHash.
func (c *LightClient) MayContainLog(blockHash [32]byte, address [20]byte, topics [][32]byte) (mayContain bool, found bool) {
	header, ok := c.store.ExecutionHeader(blockHash)
	if !ok {
		return false, false
	}

	bloom := types.Bloom(header.LogsBloom)
	if !types.BloomContains(bloom, address[:]) {
		return false, true
	}
	for _, topic := range topics {
		if !types.BloomContains(bloom, topic[:]) {
			return false, true
		}
	}
	return true, true
}
