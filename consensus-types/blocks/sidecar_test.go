package blocks

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	fuzz "github.com/google/gofuzz"
	"github.com/prysmaticlabs/blobkzg/config/params"
	"github.com/prysmaticlabs/blobkzg/consensus-types/primitives"
	"github.com/prysmaticlabs/blobkzg/crypto/hash"
	"github.com/prysmaticlabs/blobkzg/testing/assert"
	"github.com/prysmaticlabs/blobkzg/testing/require"
)

func testSidecarData(cfg *params.BeaconChainConfig, index uint64) *BlobSidecarData {
	d := &BlobSidecarData{
		BlockRoot:       [32]byte{'r', 'o', 'o', 't'},
		Index:           index,
		Slot:            42,
		BlockParentRoot: [32]byte{'p', 'a', 'r', 'e', 'n', 't'},
		ProposerIndex:   7,
		Blob:            bytes.Repeat([]byte{0x01}, int(cfg.BytesPerBlob())),
	}
	d.KzgCommitment[0] = 0xc0
	d.KzgProof[0] = 0xc0
	return d
}

func testSidecar(t *testing.T, cfg *params.BeaconChainConfig, index uint64) *BlobSidecar {
	sc, err := NewBlobSidecar(cfg, testSidecarData(cfg, index))
	require.NoError(t, err)
	return sc
}

func TestNewBlobSidecar(t *testing.T) {
	cfg := params.MinimalSpecConfig()

	d := testSidecarData(cfg, cfg.MaxBlobsPerBlock-1)
	sc, err := NewBlobSidecar(cfg, d)
	require.NoError(t, err)
	assert.Equal(t, d.BlockRoot, sc.BlockRoot())
	assert.Equal(t, d.Index, sc.Index())
	assert.Equal(t, d.Slot, sc.Slot())
	assert.Equal(t, d.BlockParentRoot, sc.BlockParentRoot())
	assert.Equal(t, d.ProposerIndex, sc.ProposerIndex())
	assert.Equal(t, d.KzgCommitment, sc.KzgCommitment())
	assert.Equal(t, d.KzgProof, sc.KzgProof())
	assert.Equal(t, cfg, sc.Config())
	assert.Equal(t, BlobIdentifier{BlockRoot: d.BlockRoot, Index: d.Index}, sc.ID())

	d.Blob[0] = 0xff
	assert.Equal(t, byte(0x01), sc.Blob()[0], "sidecar shares the caller's blob buffer")

	_, err = NewBlobSidecar(cfg, testSidecarData(cfg, cfg.MaxBlobsPerBlock))
	assert.ErrorIs(t, err, errIndexOutOfBounds)

	short := testSidecarData(cfg, 0)
	short.Blob = short.Blob[1:]
	_, err = NewBlobSidecar(cfg, short)
	assert.ErrorIs(t, err, errBlobLength)

	_, err = NewBlobSidecar(nil, testSidecarData(cfg, 0))
	assert.ErrorIs(t, err, errNilConfig)
	_, err = NewBlobSidecar(cfg, nil)
	assert.ErrorIs(t, err, errNilSidecar)
}

func TestMaxBlobSidecarSize(t *testing.T) {
	assert.Equal(t, uint64(131256), MaxBlobSidecarSize(params.MainnetConfig()))
	assert.Equal(t, uint64(312), MaxBlobSidecarSize(params.MinimalSpecConfig()))
}

func TestMaxBlobSidecarSize_MatchesEverySerialization(t *testing.T) {
	for _, cfg := range []*params.BeaconChainConfig{params.MainnetConfig(), params.MinimalSpecConfig()} {
		fuzzer := fuzz.NewWithSeed(0)
		want := MaxBlobSidecarSize(cfg)
		for i := 0; i < 20; i++ {
			d := testSidecarData(cfg, 0)
			fuzzer.Fuzz(&d.BlockRoot)
			fuzzer.Fuzz(&d.BlockParentRoot)
			fuzzer.Fuzz(&d.KzgCommitment)
			fuzzer.Fuzz(&d.KzgProof)
			var slot, proposer uint64
			fuzzer.Fuzz(&slot)
			fuzzer.Fuzz(&proposer)
			fuzzer.Fuzz(&d.Index)
			d.Slot = primitives.Slot(slot)
			d.ProposerIndex = primitives.ValidatorIndex(proposer)
			d.Index %= cfg.MaxBlobsPerBlock

			sc, err := NewBlobSidecar(cfg, d)
			require.NoError(t, err)
			enc, err := sc.MarshalSSZ()
			require.NoError(t, err)
			assert.Equal(t, want, uint64(len(enc)))
			assert.Equal(t, int(want), sc.SizeSSZ())
		}
	}
}

func TestBlobSidecar_SSZRoundTrip(t *testing.T) {
	cfg := params.MinimalSpecConfig()
	sc := testSidecar(t, cfg, 2)
	enc, err := sc.MarshalSSZ()
	require.NoError(t, err)

	assert.DeepEqual(t, sc.blockRoot[:], enc[0:32])
	assert.Equal(t, byte(2), enc[32])
	assert.Equal(t, byte(42), enc[40])
	assert.Equal(t, byte(7), enc[80])
	assert.Equal(t, byte(0xc0), enc[88+cfg.BytesPerBlob()])

	dec, err := UnmarshalBlobSidecar(cfg, enc)
	require.NoError(t, err)
	assert.DeepEqual(t, sc, dec)

	enc[0] = 0xaa
	assert.Equal(t, byte('r'), dec.BlockRoot()[0])

	_, err = UnmarshalBlobSidecar(cfg, enc[1:])
	assert.ErrorContains(t, "want 312", err)
	_, err = UnmarshalBlobSidecar(params.MainnetConfig(), enc)
	assert.NotNil(t, err)
}

func TestBlobSidecar_HashTreeRoot(t *testing.T) {
	cfg := params.MinimalSpecConfig()
	a := testSidecar(t, cfg, 1)
	b := testSidecar(t, cfg, 1)
	rootA, err := a.HashTreeRoot()
	require.NoError(t, err)
	rootB, err := b.HashTreeRoot()
	require.NoError(t, err)
	assert.Equal(t, rootA, rootB)

	c := testSidecar(t, cfg, 2)
	rootC, err := c.HashTreeRoot()
	require.NoError(t, err)
	assert.NotEqual(t, rootA, rootC)
}

// merkleizeBytes splits b into zero padded 32 byte chunks and merkleizes them, padding the
// leaf count to a power of two with zero chunks.
func merkleizeBytes(b []byte) [32]byte {
	var chunks [][32]byte
	for i := 0; i < len(b); i += 32 {
		var c [32]byte
		copy(c[:], b[i:])
		chunks = append(chunks, c)
	}
	for len(chunks)&(len(chunks)-1) != 0 {
		chunks = append(chunks, [32]byte{})
	}
	for len(chunks) > 1 {
		next := make([][32]byte, len(chunks)/2)
		for i := range next {
			next[i] = hash.Hash(append(chunks[2*i][:], chunks[2*i+1][:]...))
		}
		chunks = next
	}
	return chunks[0]
}

func uint64Leaf(v uint64) []byte {
	leaf := make([]byte, 32)
	binary.LittleEndian.PutUint64(leaf, v)
	return leaf
}

func TestBlobSidecar_HashTreeRootKnownVector(t *testing.T) {
	cfg := params.MinimalSpecConfig()
	sc := testSidecar(t, cfg, 1)
	got, err := sc.HashTreeRoot()
	require.NoError(t, err)

	blockRoot := sc.BlockRoot()
	parentRoot := sc.BlockParentRoot()
	commitment := sc.KzgCommitment()
	proof := sc.KzgProof()
	blobRoot := merkleizeBytes(sc.Blob())
	commitmentRoot := merkleizeBytes(commitment[:])
	proofRoot := merkleizeBytes(proof[:])
	var leaves []byte
	for _, leaf := range [][]byte{
		blockRoot[:],
		uint64Leaf(sc.Index()),
		uint64Leaf(uint64(sc.Slot())),
		parentRoot[:],
		uint64Leaf(uint64(sc.ProposerIndex())),
		blobRoot[:],
		commitmentRoot[:],
		proofRoot[:],
	} {
		leaves = append(leaves, leaf...)
	}
	assert.Equal(t, merkleizeBytes(leaves), got)

	want := hexutil.MustDecode("0x21255c04452c7f591946ea193bda3b1ab8b73fa2ca31ee653d0ee0872fcdd802")
	assert.DeepEqual(t, want, got[:])
}
