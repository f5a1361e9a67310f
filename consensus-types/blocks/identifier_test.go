package blocks

import (
	"testing"

	"github.com/prysmaticlabs/blobkzg/crypto/hash"
	"github.com/prysmaticlabs/blobkzg/encoding/ssz"
	"github.com/prysmaticlabs/blobkzg/testing/assert"
	"github.com/prysmaticlabs/blobkzg/testing/require"
)

func TestBlobIdentifier_OrderIgnoresBlockRoot(t *testing.T) {
	a := BlobIdentifier{BlockRoot: [32]byte{'a'}, Index: 3}
	b := BlobIdentifier{BlockRoot: [32]byte{'b'}, Index: 3}
	c := BlobIdentifier{BlockRoot: [32]byte{'a'}, Index: 4}

	assert.Equal(t, 0, a.Compare(b))
	assert.Equal(t, 0, b.Compare(a))
	assert.Equal(t, false, a.Less(b))
	assert.Equal(t, false, b.Less(a))
	assert.Equal(t, true, b.Less(c))
	assert.Equal(t, 1, c.Compare(a))
}

func TestBlobIdentifier_SSZ(t *testing.T) {
	id := &BlobIdentifier{BlockRoot: [32]byte{1, 2, 3}, Index: 5}
	enc, err := id.MarshalSSZ()
	require.NoError(t, err)
	assert.Equal(t, 40, len(enc))
	assert.Equal(t, byte(5), enc[32])

	var dec BlobIdentifier
	require.NoError(t, dec.UnmarshalSSZ(enc))
	assert.Equal(t, *id, dec)
	assert.NotNil(t, dec.UnmarshalSSZ(enc[:39]))

	root, err := id.HashTreeRoot()
	require.NoError(t, err)
	indexRoot := ssz.Uint64Root(5)
	assert.Equal(t, hash.Hash(append(id.BlockRoot[:], indexRoot[:]...)), root)
}
