package blocks

import (
	"slices"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blobkzg/config/params"
	"github.com/prysmaticlabs/go-bitfield"
)

var errListFull = errors.New("blob sidecar list exceeds max blobs per block")

// BlobSidecarList is the list of sidecars of one block. The list shares its sidecars with
// other holders. Canonical order is ascending index, which the producer establishes.
type BlobSidecarList []*BlobSidecar

// NewBlobSidecarList checks that the sidecars fit the MaxBlobsPerBlock bound of cfg.
func NewBlobSidecarList(cfg *params.BeaconChainConfig, sidecars ...*BlobSidecar) (BlobSidecarList, error) {
	if cfg == nil {
		return nil, errNilConfig
	}
	if uint64(len(sidecars)) > cfg.MaxBlobsPerBlock {
		return nil, errors.Wrapf(errListFull, "got %d, max %d", len(sidecars), cfg.MaxBlobsPerBlock)
	}
	for _, sc := range sidecars {
		if sc == nil {
			return nil, errNilSidecar
		}
	}
	return sidecars, nil
}

// IsSorted reports whether the list is in canonical index order.
func (l BlobSidecarList) IsSorted() bool {
	return slices.IsSortedFunc(l, (*BlobSidecar).Compare)
}

// Sort puts the list in canonical index order.
func (l BlobSidecarList) Sort() {
	slices.SortStableFunc(l, (*BlobSidecar).Compare)
}

// FixedBlobSidecarList tracks, by index, which sidecars of a block have been retrieved.
type FixedBlobSidecarList struct {
	sidecars []*BlobSidecar
}

// NewFixedBlobSidecarList returns a list with MaxBlobsPerBlock empty slots.
func NewFixedBlobSidecarList(cfg *params.BeaconChainConfig) *FixedBlobSidecarList {
	return &FixedBlobSidecarList{sidecars: make([]*BlobSidecar, cfg.MaxBlobsPerBlock)}
}

// Len is the number of slots.
func (f *FixedBlobSidecarList) Len() int {
	return len(f.sidecars)
}

// Set stores sc in the slot of its index, replacing what was there.
func (f *FixedBlobSidecarList) Set(sc *BlobSidecar) error {
	if sc == nil {
		return errNilSidecar
	}
	if sc.Index() >= uint64(len(f.sidecars)) {
		return errors.Wrapf(errIndexOutOfBounds, "index %d, slots %d", sc.Index(), len(f.sidecars))
	}
	f.sidecars[sc.Index()] = sc
	return nil
}

// Get returns the sidecar at index i, if any.
func (f *FixedBlobSidecarList) Get(i uint64) (*BlobSidecar, bool) {
	if i >= uint64(len(f.sidecars)) || f.sidecars[i] == nil {
		return nil, false
	}
	return f.sidecars[i], true
}

// Missing returns a bitlist with a bit set for every empty slot.
func (f *FixedBlobSidecarList) Missing() bitfield.Bitlist {
	missing := bitfield.NewBitlist(uint64(len(f.sidecars)))
	for i, sc := range f.sidecars {
		if sc == nil {
			missing.SetBitAt(uint64(i), true)
		}
	}
	return missing
}

// Filled returns the stored sidecars in index order.
func (f *FixedBlobSidecarList) Filled() BlobSidecarList {
	filled := make(BlobSidecarList, 0, len(f.sidecars))
	for _, sc := range f.sidecars {
		if sc != nil {
			filled = append(filled, sc)
		}
	}
	return filled
}
