// Package testing provides a deterministic kzg.Engine for any blob geometry. Commitments and
// proofs are hash based, so it has none of the cryptographic guarantees of a real engine,
// but it enforces the same input rules and rejects any tampered input.
package testing

import (
	"bytes"

	"github.com/pkg/errors"
	fieldparams "github.com/prysmaticlabs/blobkzg/config/fieldparams"
	"github.com/prysmaticlabs/blobkzg/crypto/hash"
	"github.com/prysmaticlabs/blobkzg/crypto/kzg"
)

// compressedFlag marks a serialized G1 point as compressed. Points without it are malformed.
const compressedFlag = 0x80

var (
	commitTag = []byte("commit")
	proofTag  = []byte("proof")
	evalTag   = []byte("eval")
	openTag   = []byte("open")
)

// Engine is a hash based stand-in for a KZG engine.
type Engine struct {
	fieldElements uint64
}

// New returns an engine for blobs of fieldElements field elements.
func New(fieldElements uint64) *Engine {
	return &Engine{fieldElements: fieldElements}
}

var _ kzg.Engine = (*Engine)(nil)

// FieldElementsPerBlob --
func (e *Engine) FieldElementsPerBlob() uint64 {
	return e.fieldElements
}

func (e *Engine) BlobToKZGCommitment(blob kzg.Blob) (kzg.Commitment, error) {
	if err := kzg.CheckBlob(blob, e.fieldElements); err != nil {
		return kzg.Commitment{}, err
	}
	return kzg.Commitment(point(commitTag, blob)), nil
}

func (e *Engine) ComputeBlobKZGProof(blob kzg.Blob, commitment kzg.Commitment) (kzg.Proof, error) {
	if err := kzg.CheckBlob(blob, e.fieldElements); err != nil {
		return kzg.Proof{}, err
	}
	if err := checkPoint(commitment[:]); err != nil {
		return kzg.Proof{}, err
	}
	return kzg.Proof(point(proofTag, commitment[:], blob)), nil
}

// ComputeKZGProof returns a value derived from the blob commitment and the point, together
// with a proof binding commitment, point and value.
func (e *Engine) ComputeKZGProof(blob kzg.Blob, z kzg.Scalar) (kzg.Proof, kzg.Scalar, error) {
	if !kzg.IsCanonical(z[:]) {
		return kzg.Proof{}, kzg.Scalar{}, errors.Wrap(kzg.ErrNonCanonicalScalar, "evaluation point")
	}
	commitment, err := e.BlobToKZGCommitment(blob)
	if err != nil {
		return kzg.Proof{}, kzg.Scalar{}, err
	}
	y := kzg.Scalar(hash.Hash(concat(evalTag, commitment[:], z[:])))
	y[0] = 0
	return kzg.Proof(point(openTag, commitment[:], z[:], y[:])), y, nil
}

func (e *Engine) VerifyBlobKZGProof(blob kzg.Blob, commitment kzg.Commitment, proof kzg.Proof) (bool, error) {
	if err := kzg.CheckBlob(blob, e.fieldElements); err != nil {
		return false, err
	}
	if err := checkPoint(commitment[:]); err != nil {
		return false, errors.Wrap(err, "commitment")
	}
	if err := checkPoint(proof[:]); err != nil {
		return false, errors.Wrap(err, "proof")
	}
	want := point(commitTag, blob)
	if !bytes.Equal(want[:], commitment[:]) {
		return false, nil
	}
	wantProof := point(proofTag, commitment[:], blob)
	return bytes.Equal(wantProof[:], proof[:]), nil
}

func (e *Engine) VerifyBlobKZGProofBatch(blobs []kzg.Blob, commitments []kzg.Commitment, proofs []kzg.Proof) (bool, error) {
	if err := kzg.CheckBatchLengths(len(blobs), len(commitments), len(proofs)); err != nil {
		return false, err
	}
	valid := true
	for i := range blobs {
		ok, err := e.VerifyBlobKZGProof(blobs[i], commitments[i], proofs[i])
		if err != nil {
			return false, errors.Wrapf(err, "triplet %d", i)
		}
		valid = valid && ok
	}
	return valid, nil
}

func (e *Engine) VerifyKZGProof(commitment kzg.Commitment, z, y kzg.Scalar, proof kzg.Proof) (bool, error) {
	if !kzg.IsCanonical(z[:]) {
		return false, errors.Wrap(kzg.ErrNonCanonicalScalar, "evaluation point")
	}
	if !kzg.IsCanonical(y[:]) {
		return false, errors.Wrap(kzg.ErrNonCanonicalScalar, "evaluation value")
	}
	if err := checkPoint(commitment[:]); err != nil {
		return false, errors.Wrap(err, "commitment")
	}
	if err := checkPoint(proof[:]); err != nil {
		return false, errors.Wrap(err, "proof")
	}
	want := point(openTag, commitment[:], z[:], y[:])
	return bytes.Equal(want[:], proof[:]), nil
}

func point(parts ...[]byte) [fieldparams.KzgCommitmentLength]byte {
	var p [fieldparams.KzgCommitmentLength]byte
	h := hash.Hash(concat(parts...))
	copy(p[:32], h[:])
	h = hash.Hash(h[:])
	copy(p[32:], h[:])
	p[0] = (p[0] & 0x1f) | compressedFlag
	return p
}

func checkPoint(p []byte) error {
	if p[0]&compressedFlag == 0 {
		return kzg.ErrMalformedPoint
	}
	return nil
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
