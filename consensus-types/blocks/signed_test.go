package blocks

import (
	"testing"

	"github.com/prysmaticlabs/blobkzg/beacon-chain/core/signing"
	"github.com/prysmaticlabs/blobkzg/config/params"
	"github.com/prysmaticlabs/blobkzg/crypto/bls"
	"github.com/prysmaticlabs/blobkzg/testing/assert"
	"github.com/prysmaticlabs/blobkzg/testing/require"
)

func TestBlobSidecar_SignAndVerify(t *testing.T) {
	cfg := params.MainnetConfig()
	sk, err := bls.RandKey()
	require.NoError(t, err)
	pub := sk.PublicKey().Marshal()
	fork := signing.DenebFork(cfg)
	gvr := [32]byte{'g', 'v', 'r'}

	sc := testSidecar(t, cfg, 0)
	before, err := sc.MarshalSSZ()
	require.NoError(t, err)

	signed, err := sc.Sign(sk, fork, gvr, cfg)
	require.NoError(t, err)
	assert.Equal(t, sc, signed.Message)
	require.NoError(t, signed.Verify(pub, fork, gvr))

	after, err := sc.MarshalSSZ()
	require.NoError(t, err)
	assert.DeepEqual(t, before, after)

	err = signed.Verify(pub, fork, [32]byte{'x'})
	assert.ErrorIs(t, err, signing.ErrSigFailedToVerify)

	other, err := bls.RandKey()
	require.NoError(t, err)
	err = signed.Verify(other.PublicKey().Marshal(), fork, gvr)
	assert.ErrorIs(t, err, signing.ErrSigFailedToVerify)
}

func TestBlobSidecar_SignUsesForkVersionAtSlotEpoch(t *testing.T) {
	cfg := params.MainnetConfig()
	sk, err := bls.RandKey()
	require.NoError(t, err)
	pub := sk.PublicKey().Marshal()

	// Slot 42 is epoch 1, before the fork at epoch 2, so the previous version signs.
	fork := &signing.Fork{PreviousVersion: [4]byte{1}, CurrentVersion: [4]byte{2}, Epoch: 2}
	signed, err := testSidecar(t, cfg, 0).Sign(sk, fork, [32]byte{}, cfg)
	require.NoError(t, err)
	require.NoError(t, signed.Verify(pub, fork, [32]byte{}))

	sameBefore := &signing.Fork{PreviousVersion: [4]byte{1}, CurrentVersion: [4]byte{9}, Epoch: 2}
	require.NoError(t, signed.Verify(pub, sameBefore, [32]byte{}))

	forkedEarlier := &signing.Fork{PreviousVersion: [4]byte{1}, CurrentVersion: [4]byte{2}, Epoch: 1}
	assert.ErrorIs(t, signed.Verify(pub, forkedEarlier, [32]byte{}), signing.ErrSigFailedToVerify)
}

func TestBlobSidecar_SignErrors(t *testing.T) {
	cfg := params.MainnetConfig()
	sk, err := bls.RandKey()
	require.NoError(t, err)
	sc := testSidecar(t, cfg, 0)

	_, err = sc.Sign(sk, nil, [32]byte{}, cfg)
	assert.ErrorIs(t, err, signing.ErrNilFork)
	_, err = sc.Sign(sk, signing.DenebFork(cfg), [32]byte{}, nil)
	assert.ErrorIs(t, err, errNilConfig)
	_, err = sc.Sign(nil, signing.DenebFork(cfg), [32]byte{}, cfg)
	assert.ErrorContains(t, "nil secret key", err)

	var signed *SignedBlobSidecar
	assert.ErrorIs(t, signed.Verify(nil, signing.DenebFork(cfg), [32]byte{}), errNilSidecar)
}
