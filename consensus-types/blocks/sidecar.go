// Package blocks holds the blob sidecar data model: identity, ordering, SSZ and JSON codecs,
// size accounting and signing.
package blocks

import (
	"github.com/pkg/errors"
	fieldparams "github.com/prysmaticlabs/blobkzg/config/fieldparams"
	"github.com/prysmaticlabs/blobkzg/config/params"
	"github.com/prysmaticlabs/blobkzg/consensus-types/primitives"
	"github.com/prysmaticlabs/blobkzg/encoding/bytesutil"
)

var (
	errNilConfig        = errors.New("nil chain config")
	errNilSidecar       = errors.New("nil blob sidecar")
	errIndexOutOfBounds = errors.New("blob index out of bounds")
	errBlobLength       = errors.New("blob has the wrong length")
)

// BlobSidecarData carries the raw fields of a sidecar into NewBlobSidecar.
type BlobSidecarData struct {
	BlockRoot       [fieldparams.RootLength]byte
	Index           uint64
	Slot            primitives.Slot
	BlockParentRoot [fieldparams.RootLength]byte
	ProposerIndex   primitives.ValidatorIndex
	Blob            []byte
	KzgCommitment   [fieldparams.KzgCommitmentLength]byte
	KzgProof        [fieldparams.KzgProofLength]byte
}

// BlobSidecar carries one blob with its commitment, proof and the metadata linking it to a
// block. It is immutable once constructed and may be shared between holders.
type BlobSidecar struct {
	blockRoot       [fieldparams.RootLength]byte
	index           uint64
	slot            primitives.Slot
	blockParentRoot [fieldparams.RootLength]byte
	proposerIndex   primitives.ValidatorIndex
	blob            []byte
	kzgCommitment   [fieldparams.KzgCommitmentLength]byte
	kzgProof        [fieldparams.KzgProofLength]byte

	cfg *params.BeaconChainConfig
}

// NewBlobSidecar validates d against cfg and returns a sidecar owning a copy of the blob.
func NewBlobSidecar(cfg *params.BeaconChainConfig, d *BlobSidecarData) (*BlobSidecar, error) {
	if cfg == nil {
		return nil, errNilConfig
	}
	if d == nil {
		return nil, errNilSidecar
	}
	if d.Index >= cfg.MaxBlobsPerBlock {
		return nil, errors.Wrapf(errIndexOutOfBounds, "index %d, max blobs per block %d", d.Index, cfg.MaxBlobsPerBlock)
	}
	if uint64(len(d.Blob)) != cfg.BytesPerBlob() {
		return nil, errors.Wrapf(errBlobLength, "got %d bytes, want %d", len(d.Blob), cfg.BytesPerBlob())
	}
	return &BlobSidecar{
		blockRoot:       d.BlockRoot,
		index:           d.Index,
		slot:            d.Slot,
		blockParentRoot: d.BlockParentRoot,
		proposerIndex:   d.ProposerIndex,
		blob:            bytesutil.SafeCopyBytes(d.Blob),
		kzgCommitment:   d.KzgCommitment,
		kzgProof:        d.KzgProof,
		cfg:             cfg,
	}, nil
}

// EmptyBlobSidecar returns the all zero sidecar. It only serves to measure the serialized size.
func EmptyBlobSidecar(cfg *params.BeaconChainConfig) *BlobSidecar {
	return &BlobSidecar{
		blob: make([]byte, cfg.BytesPerBlob()),
		cfg:  cfg,
	}
}

// MaxBlobSidecarSize is the serialized size of the empty sidecar. Every field has a fixed
// length, so every sidecar under cfg serializes to exactly this many bytes.
func MaxBlobSidecarSize(cfg *params.BeaconChainConfig) uint64 {
	return uint64(EmptyBlobSidecar(cfg).SizeSSZ())
}

// ID returns the identifier of the blob within its block.
func (b *BlobSidecar) ID() BlobIdentifier {
	return BlobIdentifier{BlockRoot: b.blockRoot, Index: b.index}
}

// Compare orders sidecars by index only, see BlobIdentifier.Compare.
func (b *BlobSidecar) Compare(o *BlobSidecar) int {
	return b.ID().Compare(o.ID())
}

func (b *BlobSidecar) BlockRoot() [fieldparams.RootLength]byte {
	return b.blockRoot
}

func (b *BlobSidecar) Index() uint64 {
	return b.index
}

func (b *BlobSidecar) Slot() primitives.Slot {
	return b.slot
}

func (b *BlobSidecar) BlockParentRoot() [fieldparams.RootLength]byte {
	return b.blockParentRoot
}

func (b *BlobSidecar) ProposerIndex() primitives.ValidatorIndex {
	return b.proposerIndex
}

// Blob returns the backing blob. Callers must not modify it.
func (b *BlobSidecar) Blob() []byte {
	return b.blob
}

func (b *BlobSidecar) KzgCommitment() [fieldparams.KzgCommitmentLength]byte {
	return b.kzgCommitment
}

func (b *BlobSidecar) KzgProof() [fieldparams.KzgProofLength]byte {
	return b.kzgProof
}

// Config returns the chain config the sidecar was built for.
func (b *BlobSidecar) Config() *params.BeaconChainConfig {
	return b.cfg
}
