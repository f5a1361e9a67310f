// Package slots converts between slots and epochs for a given chain config.
package slots

import (
	"github.com/prysmaticlabs/blobkzg/config/params"
	"github.com/prysmaticlabs/blobkzg/consensus-types/primitives"
)

// ToEpoch returns the epoch number of the input slot.
//
// Spec pseudocode definition:
//
//	def compute_epoch_at_slot(slot: Slot) -> Epoch:
//	  return Epoch(slot // SLOTS_PER_EPOCH)
func ToEpoch(slot primitives.Slot, cfg *params.BeaconChainConfig) primitives.Epoch {
	return primitives.Epoch(slot.DivSlot(cfg.SlotsPerEpoch))
}

// EpochStart returns the first slot of the given epoch.
func EpochStart(epoch primitives.Epoch, cfg *params.BeaconChainConfig) primitives.Slot {
	return primitives.Slot(epoch) * cfg.SlotsPerEpoch
}
