package consensus

import "testing"

func TestSlotToEpoch(t *testing.T) {
	tests := []struct {
		slot          Slot
		slotsPerEpoch uint64
		want          Epoch
	}{
		{0, 32, 0},
		{31, 32, 0},
		{32, 32, 1},
		{63, 32, 1},
		{64, 32, 2},
		{0, 4, 0},
		{3, 4, 0},
		{4, 4, 1},
		{7, 4, 1},
		{8, 4, 2},
		{100, 1, 100},
	}
	for _, tt := range tests {
		got := SlotToEpoch(tt.slot, tt.slotsPerEpoch)
		if got != tt.want {
			t.Errorf("SlotToEpoch(%d, %d) = %d, want %d", tt.slot, tt.slotsPerEpoch, got, tt.want)
		}
	}
}

func TestSlotToEpoch_ZeroSlotsPerEpoch(t *testing.T) {
	got := SlotToEpoch(10, 0)
	if got != 0 {
		t.Errorf("SlotToEpoch with 0 slotsPerEpoch should return 0, got %d", got)
	}
}

func TestEpochStartSlot(t *testing.T) {
	tests := []struct {
		epoch         Epoch
		slotsPerEpoch uint64
		want          Slot
	}{
		{0, 32, 0},
		{1, 32, 32},
		{2, 32, 64},
		{0, 4, 0},
		{1, 4, 4},
		{2, 4, 8},
		{10, 4, 40},
	}
	for _, tt := range tests {
		got := EpochStartSlot(tt.epoch, tt.slotsPerEpoch)
		if got != tt.want {
			t.Errorf("EpochStartSlot(%d, %d) = %d, want %d", tt.epoch, tt.slotsPerEpoch, got, tt.want)
		}
	}
}
