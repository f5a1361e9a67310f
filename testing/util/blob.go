package util

import (
	"crypto/rand"
	"io"
	"testing"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	blobkzg "github.com/prysmaticlabs/blobkzg/beacon-chain/blockchain/kzg"
	"github.com/prysmaticlabs/blobkzg/config/params"
	"github.com/prysmaticlabs/blobkzg/consensus-types/blocks"
	"github.com/prysmaticlabs/blobkzg/crypto/kzg"
	"github.com/prysmaticlabs/blobkzg/testing/require"
)

// CanonicalizeBlob zeroes the most significant byte of every field element, which puts every
// element below the BLS12-381 scalar modulus.
func CanonicalizeBlob(blob []byte, bytesPerFieldElement uint64) {
	for i := uint64(0); i < uint64(len(blob)); i += bytesPerFieldElement {
		blob[i] = 0
	}
}

// RandomValidBlobSidecar builds a sidecar around a random canonical blob with a matching
// commitment and proof. Every other field keeps its zero value.
func RandomValidBlobSidecar(rng io.Reader, cfg *params.BeaconChainConfig, engine kzg.Engine) (*blocks.BlobSidecar, error) {
	computer, err := blobkzg.NewProofComputer(cfg, engine)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, cfg.BytesPerBlob())
	if _, err := io.ReadFull(rng, buf); err != nil {
		return nil, errors.Wrap(err, "could not read random blob")
	}
	CanonicalizeBlob(buf, cfg.BytesPerFieldElement)
	blob, err := blobkzg.NewBlobConverter(cfg).Convert(buf)
	if err != nil {
		return nil, err
	}
	commitment, err := computer.BlobToKZGCommitment(blob)
	if err != nil {
		return nil, err
	}
	proof, err := computer.ComputeBlobKZGProof(blob, commitment)
	if err != nil {
		return nil, err
	}
	return blocks.NewBlobSidecar(cfg, &blocks.BlobSidecarData{
		Blob:          blob,
		KzgCommitment: commitment,
		KzgProof:      proof,
	})
}

// RandomFieldElement returns a uniformly random canonical scalar, usable as an evaluation point.
// Draws at or above the modulus are discarded and drawn again.
func RandomFieldElement(rng io.Reader) (kzg.Scalar, error) {
	var buf [32]byte
	fe := new(uint256.Int)
	for {
		if _, err := io.ReadFull(rng, buf[:]); err != nil {
			return kzg.Scalar{}, errors.Wrap(err, "could not read random field element")
		}
		// The modulus is below 2^255, so the top bit is never set in a canonical value.
		buf[0] &= 0x7f
		if fe.SetBytes(buf[:]).Lt(kzg.BLSModulus) {
			return kzg.Scalar(buf), nil
		}
	}
}

// GenerateTestBlobSidecars returns n valid sidecars of one block, with indices 0 to n-1.
func GenerateTestBlobSidecars(t testing.TB, cfg *params.BeaconChainConfig, engine kzg.Engine, n int) blocks.BlobSidecarList {
	blockRoot := [32]byte{'b', 'l', 'o', 'c', 'k'}
	parentRoot := [32]byte{'p', 'a', 'r', 'e', 'n', 't'}
	sidecars := make(blocks.BlobSidecarList, n)
	for i := range sidecars {
		sc, err := RandomValidBlobSidecar(rand.Reader, cfg, engine)
		require.NoError(t, err)
		sidecars[i], err = blocks.NewBlobSidecar(cfg, &blocks.BlobSidecarData{
			BlockRoot:       blockRoot,
			Index:           uint64(i),
			Slot:            1,
			BlockParentRoot: parentRoot,
			Blob:            sc.Blob(),
			KzgCommitment:   sc.KzgCommitment(),
			KzgProof:        sc.KzgProof(),
		})
		require.NoError(t, err)
	}
	return sidecars
}
