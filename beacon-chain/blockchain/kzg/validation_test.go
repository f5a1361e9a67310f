package kzg_test

import (
	"crypto/rand"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	blobkzg "github.com/prysmaticlabs/blobkzg/beacon-chain/blockchain/kzg"
	"github.com/prysmaticlabs/blobkzg/config/params"
	"github.com/prysmaticlabs/blobkzg/consensus-types/blocks"
	"github.com/prysmaticlabs/blobkzg/crypto/kzg"
	"github.com/prysmaticlabs/blobkzg/crypto/kzg/gokzg"
	"github.com/prysmaticlabs/blobkzg/crypto/kzg/mock"
	kzgtesting "github.com/prysmaticlabs/blobkzg/crypto/kzg/testing"
	"github.com/prysmaticlabs/blobkzg/testing/assert"
	"github.com/prysmaticlabs/blobkzg/testing/require"
	"github.com/prysmaticlabs/blobkzg/testing/util"
	"github.com/sirupsen/logrus"
	logTest "github.com/sirupsen/logrus/hooks/test"
)

type triplets struct {
	commitments []kzg.Commitment
	blobs       [][]byte
	proofs      []kzg.Proof
}

func minimalSetup(t *testing.T) (*params.BeaconChainConfig, kzg.Engine, *blobkzg.ProofValidator) {
	cfg := params.MinimalSpecConfig()
	engine := kzgtesting.New(cfg.FieldElementsPerBlob)
	v, err := blobkzg.NewProofValidator(cfg, engine)
	require.NoError(t, err)
	return cfg, engine, v
}

func randomTriplets(t *testing.T, cfg *params.BeaconChainConfig, engine kzg.Engine, n int) *triplets {
	tr := &triplets{}
	for i := 0; i < n; i++ {
		sc, err := util.RandomValidBlobSidecar(rand.Reader, cfg, engine)
		require.NoError(t, err)
		tr.commitments = append(tr.commitments, sc.KzgCommitment())
		tr.blobs = append(tr.blobs, append([]byte{}, sc.Blob()...))
		tr.proofs = append(tr.proofs, sc.KzgProof())
	}
	return tr
}

func TestNewProofValidator(t *testing.T) {
	cfg := params.MinimalSpecConfig()
	_, err := blobkzg.NewProofValidator(cfg, nil)
	assert.ErrorContains(t, "nil kzg engine", err)

	_, err = blobkzg.NewProofValidator(params.MainnetConfig(), kzgtesting.New(cfg.FieldElementsPerBlob))
	assert.ErrorContains(t, "blob geometry", err)

	bad := params.MinimalSpecConfig()
	bad.SlotsPerEpoch = 0
	_, err = blobkzg.NewProofValidator(bad, kzgtesting.New(cfg.FieldElementsPerBlob))
	assert.ErrorContains(t, "SLOTS_PER_EPOCH", err)
}

func TestValidateBlob_RoundTrip(t *testing.T) {
	cfg, engine, v := minimalSetup(t)
	tr := randomTriplets(t, cfg, engine, 10)
	for i := range tr.blobs {
		ok, err := v.ValidateBlob(tr.commitments[i], tr.proofs[i], tr.blobs[i])
		require.NoError(t, err)
		assert.Equal(t, true, ok)
	}
}

func TestValidateBlob_RoundTripMainnet(t *testing.T) {
	cfg := params.MainnetConfig()
	engine, err := gokzg.New()
	require.NoError(t, err)
	v, err := blobkzg.NewProofValidator(cfg, engine)
	require.NoError(t, err)

	tr := randomTriplets(t, cfg, engine, 1)
	ok, err := v.ValidateBlob(tr.commitments[0], tr.proofs[0], tr.blobs[0])
	require.NoError(t, err)
	assert.Equal(t, true, ok)

	tr.blobs[0][1000] ^= 0x01
	ok, err = v.ValidateBlob(tr.commitments[0], tr.proofs[0], tr.blobs[0])
	require.NoError(t, err)
	assert.Equal(t, false, ok)
}

func TestValidateBlob_SingleByteMutations(t *testing.T) {
	cfg, engine, v := minimalSetup(t)
	tr := randomTriplets(t, cfg, engine, 1)
	c, p, b := tr.commitments[0], tr.proofs[0], tr.blobs[0]

	for i := range b {
		if i%32 == 0 {
			// Keep the blob canonical.
			continue
		}
		mutated := append([]byte{}, b...)
		mutated[i] ^= 0x01
		ok, err := v.ValidateBlob(c, p, mutated)
		require.NoError(t, err)
		assert.Equal(t, false, ok, "blob byte %d", i)
	}
	for i := 1; i < len(c); i++ {
		mutated := c
		mutated[i] ^= 0x01
		ok, err := v.ValidateBlob(mutated, p, b)
		require.NoError(t, err)
		assert.Equal(t, false, ok, "commitment byte %d", i)
	}
	for i := 1; i < len(p); i++ {
		mutated := p
		mutated[i] ^= 0x01
		ok, err := v.ValidateBlob(c, mutated, b)
		require.NoError(t, err)
		assert.Equal(t, false, ok, "proof byte %d", i)
	}
}

func TestValidateBlob_Errors(t *testing.T) {
	cfg, engine, v := minimalSetup(t)
	tr := randomTriplets(t, cfg, engine, 1)

	_, err := v.ValidateBlob(tr.commitments[0], tr.proofs[0], tr.blobs[0][1:])
	assert.ErrorIs(t, err, blobkzg.ErrInputSize)

	ok, err := v.ValidateBlob(kzg.Commitment{}, tr.proofs[0], tr.blobs[0])
	assert.ErrorIs(t, err, blobkzg.ErrEngine)
	assert.ErrorIs(t, err, kzg.ErrMalformedPoint)
	assert.Equal(t, false, ok)

	nonCanonical := append([]byte{}, tr.blobs[0]...)
	nonCanonical[0] = 0xff
	_, err = v.ValidateBlob(tr.commitments[0], tr.proofs[0], nonCanonical)
	assert.ErrorIs(t, err, blobkzg.ErrEngine)
	assert.ErrorIs(t, err, kzg.ErrNonCanonicalScalar)
}

func TestValidateBlobs_IsConjunction(t *testing.T) {
	cfg, engine, v := minimalSetup(t)
	tr := randomTriplets(t, cfg, engine, 5)

	ok, err := v.ValidateBlobs(tr.commitments, tr.blobs, tr.proofs)
	require.NoError(t, err)
	assert.Equal(t, true, ok)

	for bad := range tr.blobs {
		proofs := append([]kzg.Proof{}, tr.proofs...)
		proofs[bad][10] ^= 0x01
		ok, err := v.ValidateBlobs(tr.commitments, tr.blobs, proofs)
		require.NoError(t, err)
		assert.Equal(t, false, ok, "batch with invalid triplet %d", bad)
	}
}

func TestValidateBlobs_SizeOneUsesSingleVerification(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	cfg := params.MinimalSpecConfig()
	engine := mock.NewMockEngine(ctrl)
	engine.EXPECT().FieldElementsPerBlob().Return(cfg.FieldElementsPerBlob).AnyTimes()
	engine.EXPECT().VerifyBlobKZGProofBatch(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	v, err := blobkzg.NewProofValidator(cfg, engine)
	require.NoError(t, err)
	blob := make([]byte, cfg.BytesPerBlob())
	commitment := kzg.Commitment{0xc0}
	proof := kzg.Proof{0xc0, 1}

	for _, want := range []bool{true, false} {
		engine.EXPECT().VerifyBlobKZGProof(kzg.Blob(blob), commitment, proof).Return(want, nil)
		single, err := v.ValidateBlob(commitment, proof, blob)
		require.NoError(t, err)

		engine.EXPECT().VerifyBlobKZGProof(kzg.Blob(blob), commitment, proof).Return(want, nil)
		batch, err := v.ValidateBlobs([]kzg.Commitment{commitment}, [][]byte{blob}, []kzg.Proof{proof})
		require.NoError(t, err)
		assert.Equal(t, want, single)
		assert.Equal(t, single, batch)
	}
}

func TestValidateBlobs_SizeOneMatchesSingle(t *testing.T) {
	cfg, engine, v := minimalSetup(t)
	tr := randomTriplets(t, cfg, engine, 1)

	single, err := v.ValidateBlob(tr.commitments[0], tr.proofs[0], tr.blobs[0])
	require.NoError(t, err)
	batch, err := v.ValidateBlobs(tr.commitments, tr.blobs, tr.proofs)
	require.NoError(t, err)
	assert.Equal(t, single, batch)

	tr.proofs[0][5] ^= 0x01
	single, err = v.ValidateBlob(tr.commitments[0], tr.proofs[0], tr.blobs[0])
	require.NoError(t, err)
	batch, err = v.ValidateBlobs(tr.commitments, tr.blobs, tr.proofs)
	require.NoError(t, err)
	assert.Equal(t, false, single)
	assert.Equal(t, single, batch)
}

func TestValidateBlobs_Misaligned(t *testing.T) {
	hook := logTest.NewGlobal()
	level := logrus.GetLevel()
	logrus.SetLevel(logrus.DebugLevel)
	defer logrus.SetLevel(level)

	cfg, engine, v := minimalSetup(t)
	tr := randomTriplets(t, cfg, engine, 2)

	ok, err := v.ValidateBlobs(tr.commitments, tr.blobs[:1], tr.proofs)
	require.NoError(t, err)
	assert.Equal(t, false, ok)
	require.LogsContain(t, hook, "Rejecting misaligned blob batch")
	require.LogsContain(t, hook, "commitments=2 blobs=1 proofs=2")

	ok, err = v.ValidateBlobs(tr.commitments, tr.blobs, tr.proofs[:1])
	require.NoError(t, err)
	assert.Equal(t, false, ok)

	ok, err = v.ValidateBlobs(nil, tr.blobs, nil)
	require.NoError(t, err)
	assert.Equal(t, false, ok)
}

func TestValidateBlobs_Empty(t *testing.T) {
	_, _, v := minimalSetup(t)
	ok, err := v.ValidateBlobs(nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, true, ok)

	ok, err = v.ValidateBlobs([]kzg.Commitment{}, [][]byte{}, []kzg.Proof{})
	require.NoError(t, err)
	assert.Equal(t, true, ok)
}

func TestValidateBlobs_MissingBlob(t *testing.T) {
	hook := logTest.NewGlobal()
	level := logrus.GetLevel()
	logrus.SetLevel(logrus.DebugLevel)
	defer logrus.SetLevel(level)

	cfg, engine, v := minimalSetup(t)
	tr := randomTriplets(t, cfg, engine, 2)

	ok, err := v.ValidateBlobs(tr.commitments, [][]byte{tr.blobs[0], nil}, tr.proofs)
	require.NoError(t, err)
	assert.Equal(t, false, ok)
	require.LogsContain(t, hook, "Rejecting blob batch with a missing blob")

	ok, err = v.ValidateBlobs(tr.commitments[:1], [][]byte{nil}, tr.proofs[:1])
	require.NoError(t, err)
	assert.Equal(t, false, ok)

	// The engine is never reached for a batch with a missing blob.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockEngine := mock.NewMockEngine(ctrl)
	mockEngine.EXPECT().FieldElementsPerBlob().Return(cfg.FieldElementsPerBlob).AnyTimes()
	mv, err := blobkzg.NewProofValidator(cfg, mockEngine)
	require.NoError(t, err)
	ok, err = mv.ValidateBlobs(tr.commitments, [][]byte{nil, tr.blobs[1]}, tr.proofs)
	require.NoError(t, err)
	assert.Equal(t, false, ok)

	// An empty but non nil blob is present and wrongly sized.
	_, err = v.ValidateBlobs(tr.commitments, [][]byte{tr.blobs[0], {}}, tr.proofs)
	require.ErrorIs(t, err, blobkzg.ErrInputSize)
}

func TestValidateBlobs_Errors(t *testing.T) {
	cfg, engine, v := minimalSetup(t)
	tr := randomTriplets(t, cfg, engine, 3)

	blobs := append([][]byte{}, tr.blobs...)
	blobs[2] = blobs[2][:10]
	_, err := v.ValidateBlobs(tr.commitments, blobs, tr.proofs)
	assert.ErrorIs(t, err, blobkzg.ErrInputSize)
	assert.ErrorContains(t, "blob 2", err)

	commitments := append([]kzg.Commitment{}, tr.commitments...)
	commitments[1] = kzg.Commitment{}
	ok, err := v.ValidateBlobs(commitments, tr.blobs, tr.proofs)
	assert.ErrorIs(t, err, blobkzg.ErrEngine)
	assert.Equal(t, false, ok)
}

func TestValidateBlobs_EngineErrorIsWrapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	cfg := params.MinimalSpecConfig()
	engine := mock.NewMockEngine(ctrl)
	engine.EXPECT().FieldElementsPerBlob().Return(cfg.FieldElementsPerBlob).AnyTimes()
	cause := errors.New("pairing failed")
	engine.EXPECT().VerifyBlobKZGProofBatch(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, cause)

	v, err := blobkzg.NewProofValidator(cfg, engine)
	require.NoError(t, err)
	blob := make([]byte, cfg.BytesPerBlob())
	ok, err := v.ValidateBlobs(make([]kzg.Commitment, 2), [][]byte{blob, blob}, make([]kzg.Proof, 2))
	assert.Equal(t, false, ok)
	assert.ErrorIs(t, err, blobkzg.ErrEngine)
	assert.ErrorIs(t, err, cause)
	assert.ErrorContains(t, "verify blob proof batch", err)
}

func TestBisectBlobSidecarKzgProofs(t *testing.T) {
	cfg, engine, v := minimalSetup(t)
	sidecars := util.GenerateTestBlobSidecars(t, cfg, engine, 4)
	require.NoError(t, v.BisectBlobSidecarKzgProofs(sidecars))
	require.NoError(t, v.BisectBlobSidecarKzgProofs(nil))

	bad := sidecars[2]
	badProof := bad.KzgProof()
	badProof[3] ^= 0x01
	tampered, err := blocks.NewBlobSidecar(cfg, &blocks.BlobSidecarData{
		BlockRoot:       bad.BlockRoot(),
		Index:           bad.Index(),
		Slot:            bad.Slot(),
		BlockParentRoot: bad.BlockParentRoot(),
		Blob:            bad.Blob(),
		KzgCommitment:   bad.KzgCommitment(),
		KzgProof:        badProof,
	})
	require.NoError(t, err)
	sidecars[2] = tampered

	err = v.BisectBlobSidecarKzgProofs(sidecars)
	assert.ErrorIs(t, err, blobkzg.ErrKzgProofFailed)
	var proofErr *blobkzg.KzgProofError
	require.Equal(t, true, errors.As(err, &proofErr))
	require.Equal(t, 1, len(proofErr.Failed()))
	assert.Equal(t, tampered.KzgCommitment(), proofErr.Failed()[0])
}

func TestIsDataAvailable(t *testing.T) {
	cfg, engine, v := minimalSetup(t)
	sidecars := util.GenerateTestBlobSidecars(t, cfg, engine, 3)
	commitments := make([][48]byte, len(sidecars))
	for i, sc := range sidecars {
		commitments[i] = sc.KzgCommitment()
	}

	require.NoError(t, v.IsDataAvailable(commitments, sidecars))
	require.NoError(t, v.IsDataAvailable(nil, nil))

	err := v.IsDataAvailable(commitments[:2], sidecars)
	assert.ErrorContains(t, "expected 2 commitments, obtained 3 sidecars", err)

	swapped := [][48]byte{commitments[1], commitments[0], commitments[2]}
	err = v.IsDataAvailable(swapped, sidecars)
	assert.ErrorContains(t, "commitment 0", err)

	reordered := blocks.BlobSidecarList{sidecars[1], sidecars[0], sidecars[2]}
	err = v.IsDataAvailable(commitments, reordered)
	assert.ErrorContains(t, "has index 1", err)
}
