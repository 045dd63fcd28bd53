package consensus

import "time"

// SlotClock computes the current slot from genesis time and slot duration.
type SlotClock struct {
	genesisTime    uint64 // unix timestamp of genesis
	secondsPerSlot uint64 // slot duration in seconds
	slotsPerEpoch  uint64 // slots per epoch
}

// NewSlotClock creates a SlotClock with the given genesis time and config.
func NewSlotClock(genesisTime uint64, cfg *ConsensusConfig) *SlotClock {
	return &SlotClock{
		genesisTime:    genesisTime,
		secondsPerSlot: cfg.SecondsPerSlot,
		slotsPerEpoch:  cfg.SlotsPerEpoch,
	}
}

// CurrentSlot returns the current slot for the given timestamp.
// Returns 0 if the timestamp is before genesis.
func (sc *SlotClock) CurrentSlot(now uint64) Slot {
	if now < sc.genesisTime {
		return 0
	}
	elapsed := now - sc.genesisTime
	return Slot(elapsed / sc.secondsPerSlot)
}

// CurrentEpoch returns the current epoch for the given timestamp.
func (sc *SlotClock) CurrentEpoch(now uint64) Epoch {
	return SlotToEpoch(sc.CurrentSlot(now), sc.slotsPerEpoch)
}

// SlotStartTime returns the absolute timestamp when a slot begins.
func (sc *SlotClock) SlotStartTime(slot Slot) uint64 {
	return sc.genesisTime + uint64(slot)*sc.secondsPerSlot
}

// TimeInSlot returns how many seconds into the slot the given timestamp is.
// Returns 0 if the timestamp is before genesis.
func (sc *SlotClock) TimeInSlot(now uint64) uint64 {
	if now < sc.genesisTime {
		return 0
	}
	elapsed := now - sc.genesisTime
	return elapsed % sc.secondsPerSlot
}

// NextSlotIn returns the duration until the next slot boundary.
func (sc *SlotClock) NextSlotIn(now uint64) time.Duration {
	if now < sc.genesisTime {
		return time.Duration(sc.genesisTime-now) * time.Second
	}
	inSlot := sc.TimeInSlot(now)
	remaining := sc.secondsPerSlot - inSlot
	return time.Duration(remaining) * time.Second
}

// GenesisTime returns the genesis timestamp.
func (sc *SlotClock) GenesisTime() uint64 {
	return sc.genesisTime
}

// SecondsPerSlot returns the slot duration.
func (sc *SlotClock) SecondsPerSlot() uint64 {
	return sc.secondsPerSlot
}

// AttestationDeadline returns the time within a slot by which attestations
// must be received. Typically 1/3 of the slot duration.
func (sc *SlotClock) AttestationDeadline() time.Duration {
	return time.Duration(sc.secondsPerSlot/3) * time.Second
}

// ProposalDeadline returns the time within a slot by which the block proposal
// must be broadcast. Typically at slot start (0).
func (sc *SlotClock) ProposalDeadline() time.Duration {
	return 0
}

