package slots

import (
	"testing"

	"github.com/prysmaticlabs/blobkzg/config/params"
	"github.com/prysmaticlabs/blobkzg/consensus-types/primitives"
	"github.com/prysmaticlabs/blobkzg/testing/assert"
)

func TestToEpoch(t *testing.T) {
	mainnet := params.MainnetConfig()
	minimal := params.MinimalSpecConfig()
	tests := []struct {
		name  string
		cfg   *params.BeaconChainConfig
		slot  primitives.Slot
		epoch primitives.Epoch
	}{
		{name: "mainnet genesis", cfg: mainnet, slot: 0, epoch: 0},
		{name: "mainnet last slot of epoch 0", cfg: mainnet, slot: 31, epoch: 0},
		{name: "mainnet first slot of epoch 1", cfg: mainnet, slot: 32, epoch: 1},
		{name: "minimal", cfg: minimal, slot: 17, epoch: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.epoch, ToEpoch(tt.slot, tt.cfg))
		})
	}
}

func TestEpochStart(t *testing.T) {
	assert.Equal(t, primitives.Slot(64), EpochStart(2, params.MainnetConfig()))
	assert.Equal(t, primitives.Slot(16), EpochStart(2, params.MinimalSpecConfig()))
}
