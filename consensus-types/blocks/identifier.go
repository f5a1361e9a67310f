package blocks

import (
	"cmp"

	ssz "github.com/ferranbt/fastssz"
	fieldparams "github.com/prysmaticlabs/blobkzg/config/fieldparams"
)

// BlobIdentifier names one blob of one block.
type BlobIdentifier struct {
	BlockRoot [fieldparams.RootLength]byte
	Index     uint64
}

// Compare orders identifiers by index only. The block root is ignored, so identifiers of
// different blocks with the same index compare as equal. Only compare identifiers of one block.
func (b BlobIdentifier) Compare(o BlobIdentifier) int {
	return cmp.Compare(b.Index, o.Index)
}

// Less --
func (b BlobIdentifier) Less(o BlobIdentifier) bool {
	return b.Compare(o) < 0
}

// SizeSSZ returns the ssz encoded size in bytes for the BlobIdentifier object
func (b *BlobIdentifier) SizeSSZ() int {
	return fieldparams.BlobIdentifierLength
}

// MarshalSSZ ssz marshals the BlobIdentifier object
func (b *BlobIdentifier) MarshalSSZ() ([]byte, error) {
	return b.MarshalSSZTo(make([]byte, 0, b.SizeSSZ()))
}

// MarshalSSZTo ssz marshals the BlobIdentifier object to a target array
func (b *BlobIdentifier) MarshalSSZTo(buf []byte) ([]byte, error) {
	dst := append(buf, b.BlockRoot[:]...)
	dst = ssz.MarshalUint64(dst, b.Index)
	return dst, nil
}

// UnmarshalSSZ ssz unmarshals the BlobIdentifier object
func (b *BlobIdentifier) UnmarshalSSZ(buf []byte) error {
	if len(buf) != fieldparams.BlobIdentifierLength {
		return ssz.ErrSize
	}
	copy(b.BlockRoot[:], buf[0:32])
	b.Index = ssz.UnmarshallUint64(buf[32:40])
	return nil
}

// HashTreeRoot ssz hashes the BlobIdentifier object
func (b *BlobIdentifier) HashTreeRoot() ([32]byte, error) {
	return hashWithPool(b.HashTreeRootWith)
}

// HashTreeRootWith ssz hashes the BlobIdentifier object with a hasher
func (b *BlobIdentifier) HashTreeRootWith(hh *ssz.Hasher) error {
	indx := hh.Index()
	hh.PutBytes(b.BlockRoot[:])
	hh.PutUint64(b.Index)
	hh.Merkleize(indx)
	return nil
}
