package blocks

import (
	ssz "github.com/ferranbt/fastssz"
	"github.com/pkg/errors"
	fieldparams "github.com/prysmaticlabs/blobkzg/config/fieldparams"
	"github.com/prysmaticlabs/blobkzg/config/params"
	"github.com/prysmaticlabs/blobkzg/consensus-types/primitives"
)

// fixedSidecarLength is the size of every sidecar field except the blob.
const fixedSidecarLength = fieldparams.RootLength + 8 + 8 + fieldparams.RootLength + 8 +
	fieldparams.KzgCommitmentLength + fieldparams.KzgProofLength

func hashWithPool(fn func(hh *ssz.Hasher) error) ([32]byte, error) {
	hh := ssz.DefaultHasherPool.Get()
	if err := fn(hh); err != nil {
		ssz.DefaultHasherPool.Put(hh)
		return [32]byte{}, err
	}
	root, err := hh.HashRoot()
	ssz.DefaultHasherPool.Put(hh)
	return root, err
}

// SizeSSZ returns the ssz encoded size in bytes for the BlobSidecar object
func (b *BlobSidecar) SizeSSZ() int {
	return fixedSidecarLength + len(b.blob)
}

// MarshalSSZ ssz marshals the BlobSidecar object
func (b *BlobSidecar) MarshalSSZ() ([]byte, error) {
	return b.MarshalSSZTo(make([]byte, 0, b.SizeSSZ()))
}

// MarshalSSZTo ssz marshals the BlobSidecar object to a target array
func (b *BlobSidecar) MarshalSSZTo(buf []byte) (dst []byte, err error) {
	dst = buf

	// Field (0) 'BlockRoot'
	dst = append(dst, b.blockRoot[:]...)

	// Field (1) 'Index'
	dst = ssz.MarshalUint64(dst, b.index)

	// Field (2) 'Slot'
	dst = ssz.MarshalUint64(dst, uint64(b.slot))

	// Field (3) 'BlockParentRoot'
	dst = append(dst, b.blockParentRoot[:]...)

	// Field (4) 'ProposerIndex'
	dst = ssz.MarshalUint64(dst, uint64(b.proposerIndex))

	// Field (5) 'Blob'
	dst = append(dst, b.blob...)

	// Field (6) 'KzgCommitment'
	dst = append(dst, b.kzgCommitment[:]...)

	// Field (7) 'KzgProof'
	dst = append(dst, b.kzgProof[:]...)

	return
}

// UnmarshalBlobSidecar decodes a sidecar serialized under cfg. The buffer must be exactly
// MaxBlobSidecarSize(cfg) bytes long. The decoded sidecar does not alias buf.
func UnmarshalBlobSidecar(cfg *params.BeaconChainConfig, buf []byte) (*BlobSidecar, error) {
	if cfg == nil {
		return nil, errNilConfig
	}
	size := MaxBlobSidecarSize(cfg)
	if uint64(len(buf)) != size {
		return nil, errors.Wrapf(ssz.ErrSize, "got %d bytes, want %d", len(buf), size)
	}
	blobEnd := 88 + cfg.BytesPerBlob()
	commitmentEnd := blobEnd + fieldparams.KzgCommitmentLength

	d := &BlobSidecarData{
		Index:         ssz.UnmarshallUint64(buf[32:40]),
		Slot:          primitives.Slot(ssz.UnmarshallUint64(buf[40:48])),
		ProposerIndex: primitives.ValidatorIndex(ssz.UnmarshallUint64(buf[80:88])),
		Blob:          buf[88:blobEnd],
	}
	copy(d.BlockRoot[:], buf[0:32])
	copy(d.BlockParentRoot[:], buf[48:80])
	copy(d.KzgCommitment[:], buf[blobEnd:commitmentEnd])
	copy(d.KzgProof[:], buf[commitmentEnd:])
	return NewBlobSidecar(cfg, d)
}

// HashTreeRoot ssz hashes the BlobSidecar object
func (b *BlobSidecar) HashTreeRoot() ([32]byte, error) {
	return hashWithPool(b.HashTreeRootWith)
}

// HashTreeRootWith ssz hashes the BlobSidecar object with a hasher
func (b *BlobSidecar) HashTreeRootWith(hh *ssz.Hasher) error {
	indx := hh.Index()

	hh.PutBytes(b.blockRoot[:])
	hh.PutUint64(b.index)
	hh.PutUint64(uint64(b.slot))
	hh.PutBytes(b.blockParentRoot[:])
	hh.PutUint64(uint64(b.proposerIndex))
	hh.PutBytes(b.blob)
	hh.PutBytes(b.kzgCommitment[:])
	hh.PutBytes(b.kzgProof[:])

	hh.Merkleize(indx)
	return nil
}
