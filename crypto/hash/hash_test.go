package hash_test

import (
	"encoding/hex"
	"testing"

	"github.com/prysmaticlabs/blobkzg/crypto/hash"
	"github.com/prysmaticlabs/blobkzg/testing/assert"
	"github.com/prysmaticlabs/blobkzg/testing/require"
)

func TestHash(t *testing.T) {
	hashOf0 := [32]byte{110, 52, 11, 156, 255, 179, 122, 152, 156, 165, 68, 230, 187, 120, 10, 44, 120, 144, 29, 63, 179, 55, 56, 118, 133, 17, 163, 6, 23, 175, 160, 29}
	assert.Equal(t, hashOf0, hash.Hash([]byte{0}))

	hashOf1 := [32]byte{75, 245, 18, 47, 52, 69, 84, 197, 59, 222, 46, 187, 140, 210, 183, 227, 209, 96, 10, 214, 49, 195, 133, 165, 215, 204, 226, 60, 119, 133, 69, 154}
	assert.Equal(t, hashOf1, hash.Hash([]byte{1}))
}

func TestHash_ZeroChunks(t *testing.T) {
	// hash(zero_chunk || zero_chunk) is the second zero hash of the merkle tree.
	want, err := hex.DecodeString("f5a5fd42d16a20302798ef6ed309979b43003d2320d9f0e8ea9831a92759fb4b")
	require.NoError(t, err)
	got := hash.Hash(make([]byte, 64))
	assert.DeepEqual(t, want, got[:])
}

func TestCustomSHA256Hasher(t *testing.T) {
	hasher := hash.CustomSHA256Hasher()
	for _, data := range [][]byte{{}, {0}, {1, 2, 3}, make([]byte, 64)} {
		assert.Equal(t, hash.Hash(data), hasher(data))
	}
}
