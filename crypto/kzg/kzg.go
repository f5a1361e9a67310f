// Package kzg defines the commitment engine used to commit to, open and verify blobs.
// Engines are swappable: the pure Go engine lives in gokzg, the C engine in ckzg and
// test doubles in mock and testing.
package kzg

import (
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	fieldparams "github.com/prysmaticlabs/blobkzg/config/fieldparams"
)

// Commitment is a serialized G1 commitment to the polynomial a blob encodes.
type Commitment [fieldparams.KzgCommitmentLength]byte

// Proof is a serialized G1 commitment to the quotient polynomial.
type Proof [fieldparams.KzgProofLength]byte

// Scalar is a big-endian BLS12-381 scalar field element, used for evaluation points and values.
type Scalar [fieldparams.KzgScalarLength]byte

// Blob is the engine view of a blob. It aliases the caller's buffer, engines never write to it.
type Blob []byte

//go:generate mockgen -destination=mock/engine_mock.go -package=mock github.com/prysmaticlabs/blobkzg/crypto/kzg Engine

// Engine performs the polynomial commitment arithmetic for blobs.
//
// Verification methods return false for a well formed input that does not verify and an error
// only when an input can not be decoded.
type Engine interface {
	FieldElementsPerBlob() uint64
	BlobToKZGCommitment(blob Blob) (Commitment, error)
	ComputeBlobKZGProof(blob Blob, commitment Commitment) (Proof, error)
	ComputeKZGProof(blob Blob, point Scalar) (Proof, Scalar, error)
	VerifyBlobKZGProof(blob Blob, commitment Commitment, proof Proof) (bool, error)
	VerifyBlobKZGProofBatch(blobs []Blob, commitments []Commitment, proofs []Proof) (bool, error)
	VerifyKZGProof(commitment Commitment, point, value Scalar, proof Proof) (bool, error)
}

var (
	ErrBlobSize             = errors.New("blob has the wrong size for this engine")
	ErrNonCanonicalScalar   = errors.New("field element is not canonical")
	ErrMalformedPoint       = errors.New("malformed G1 point encoding")
	ErrBatchLength          = errors.New("batch inputs have different lengths")
	ErrEngineNotInitialized = errors.New("kzg engine is not initialized")
)

// BLSModulus is the order of the BLS12-381 scalar field.
var BLSModulus = uint256.MustFromHex("0x73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001")

// IsCanonical reports whether s encodes an integer strictly below BLSModulus.
func IsCanonical(s []byte) bool {
	return new(uint256.Int).SetBytes(s).Lt(BLSModulus)
}

// CheckBlob verifies the blob length and that every field element is canonical.
func CheckBlob(blob Blob, fieldElements uint64) error {
	if uint64(len(blob)) != fieldElements*fieldparams.KzgScalarLength {
		return errors.Wrapf(ErrBlobSize, "got %d bytes, want %d", len(blob), fieldElements*fieldparams.KzgScalarLength)
	}
	for i := uint64(0); i < fieldElements; i++ {
		fe := blob[i*fieldparams.KzgScalarLength : (i+1)*fieldparams.KzgScalarLength]
		if !IsCanonical(fe) {
			return errors.Wrapf(ErrNonCanonicalScalar, "field element %d", i)
		}
	}
	return nil
}

// CheckBatchLengths returns ErrBatchLength unless all three batch inputs have the same length.
func CheckBatchLengths(blobs, commitments, proofs int) error {
	if blobs != commitments || blobs != proofs {
		return errors.Wrapf(ErrBatchLength, "blobs=%d commitments=%d proofs=%d", blobs, commitments, proofs)
	}
	return nil
}
