// Package gokzg implements the kzg.Engine interface on top of crate-crypto/go-kzg-4844.
package gokzg

import (
	"sync"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	GoKZG "github.com/crate-crypto/go-kzg-4844"
	"github.com/pkg/errors"
	fieldparams "github.com/prysmaticlabs/blobkzg/config/fieldparams"
	"github.com/prysmaticlabs/blobkzg/crypto/kzg"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "kzg")

const blobLength = len(GoKZG.Blob{})

// FieldElementsPerBlob is the only blob geometry go-kzg-4844 supports.
const FieldElementsPerBlob = uint64(blobLength / fieldparams.KzgScalarLength)

var (
	kzgContext *GoKZG.Context
	startOnce  sync.Once
	startErr   error
)

// Start loads the trusted setup into the process wide go-kzg context. It is safe to call
// more than once, the setup is only loaded the first time.
func Start() error {
	startOnce.Do(func() {
		kzgContext, startErr = GoKZG.NewContext4096Secure()
		if startErr != nil {
			startErr = errors.Wrap(startErr, "could not initialize go-kzg context")
			return
		}
		log.Debug("Loaded KZG trusted setup")
	})
	return startErr
}

// Engine verifies and computes KZG commitments and proofs with go-kzg-4844.
type Engine struct {
	ctx           *GoKZG.Context
	parallelBatch bool
	numGoRoutines int
}

// Option configures an Engine.
type Option func(*Engine)

// WithParallelBatch makes batch verification fan out across goroutines.
func WithParallelBatch() Option {
	return func(e *Engine) {
		e.parallelBatch = true
	}
}

// WithGoRoutines bounds the goroutines used when computing commitments and proofs.
// Zero lets go-kzg pick the number of CPUs.
func WithGoRoutines(n int) Option {
	return func(e *Engine) {
		e.numGoRoutines = n
	}
}

// New returns an engine backed by the shared trusted setup, loading it if needed.
func New(opts ...Option) (*Engine, error) {
	if err := Start(); err != nil {
		return nil, err
	}
	e := &Engine{ctx: kzgContext}
	for _, o := range opts {
		o(e)
	}
	return e, nil
}

var _ kzg.Engine = (*Engine)(nil)

// FieldElementsPerBlob --
func (e *Engine) FieldElementsPerBlob() uint64 {
	return FieldElementsPerBlob
}

// BlobToKZGCommitment computes the commitment to the polynomial the blob encodes.
func (e *Engine) BlobToKZGCommitment(blob kzg.Blob) (kzg.Commitment, error) {
	b, err := toGoKZGBlob(blob)
	if err != nil {
		return kzg.Commitment{}, err
	}
	commitment, err := e.ctx.BlobToKZGCommitment(b, e.numGoRoutines)
	if err != nil {
		return kzg.Commitment{}, err
	}
	return kzg.Commitment(commitment), nil
}

// ComputeBlobKZGProof computes the proof binding the blob to its commitment.
// It does not check that the commitment matches the blob.
func (e *Engine) ComputeBlobKZGProof(blob kzg.Blob, commitment kzg.Commitment) (kzg.Proof, error) {
	b, err := toGoKZGBlob(blob)
	if err != nil {
		return kzg.Proof{}, err
	}
	proof, err := e.ctx.ComputeBlobKZGProof(b, GoKZG.KZGCommitment(commitment), e.numGoRoutines)
	if err != nil {
		return kzg.Proof{}, err
	}
	return kzg.Proof(proof), nil
}

// ComputeKZGProof opens the blob polynomial at point, returning the proof and the evaluation.
func (e *Engine) ComputeKZGProof(blob kzg.Blob, point kzg.Scalar) (kzg.Proof, kzg.Scalar, error) {
	b, err := toGoKZGBlob(blob)
	if err != nil {
		return kzg.Proof{}, kzg.Scalar{}, err
	}
	proof, value, err := e.ctx.ComputeKZGProof(b, GoKZG.Scalar(point), e.numGoRoutines)
	if err != nil {
		return kzg.Proof{}, kzg.Scalar{}, err
	}
	return kzg.Proof(proof), kzg.Scalar(value), nil
}

// VerifyBlobKZGProof reports whether proof shows that commitment commits to blob.
func (e *Engine) VerifyBlobKZGProof(blob kzg.Blob, commitment kzg.Commitment, proof kzg.Proof) (bool, error) {
	b, err := toGoKZGBlob(blob)
	if err != nil {
		return false, err
	}
	if err := kzg.CheckBlob(blob, FieldElementsPerBlob); err != nil {
		return false, err
	}
	if err := checkPoints(commitment, proof); err != nil {
		return false, err
	}
	return e.ctx.VerifyBlobKZGProof(b, GoKZG.KZGCommitment(commitment), GoKZG.KZGProof(proof)) == nil, nil
}

// VerifyBlobKZGProofBatch reports whether every (blob, commitment, proof) triplet verifies.
func (e *Engine) VerifyBlobKZGProofBatch(blobs []kzg.Blob, commitments []kzg.Commitment, proofs []kzg.Proof) (bool, error) {
	if err := kzg.CheckBatchLengths(len(blobs), len(commitments), len(proofs)); err != nil {
		return false, err
	}
	gBlobs := make([]GoKZG.Blob, len(blobs))
	gCommitments := make([]GoKZG.KZGCommitment, len(commitments))
	gProofs := make([]GoKZG.KZGProof, len(proofs))
	for i := range blobs {
		b, err := toGoKZGBlob(blobs[i])
		if err != nil {
			return false, errors.Wrapf(err, "blob %d", i)
		}
		if err := kzg.CheckBlob(blobs[i], FieldElementsPerBlob); err != nil {
			return false, errors.Wrapf(err, "blob %d", i)
		}
		if err := checkPoints(commitments[i], proofs[i]); err != nil {
			return false, errors.Wrapf(err, "triplet %d", i)
		}
		gBlobs[i] = *b
		gCommitments[i] = GoKZG.KZGCommitment(commitments[i])
		gProofs[i] = GoKZG.KZGProof(proofs[i])
	}
	if e.parallelBatch {
		return e.ctx.VerifyBlobKZGProofBatchPar(gBlobs, gCommitments, gProofs) == nil, nil
	}
	return e.ctx.VerifyBlobKZGProofBatch(gBlobs, gCommitments, gProofs) == nil, nil
}

// VerifyKZGProof reports whether proof shows that the polynomial committed to by commitment
// evaluates to value at point.
func (e *Engine) VerifyKZGProof(commitment kzg.Commitment, point, value kzg.Scalar, proof kzg.Proof) (bool, error) {
	if !kzg.IsCanonical(point[:]) {
		return false, errors.Wrap(kzg.ErrNonCanonicalScalar, "evaluation point")
	}
	if !kzg.IsCanonical(value[:]) {
		return false, errors.Wrap(kzg.ErrNonCanonicalScalar, "evaluation value")
	}
	if err := checkPoints(commitment, proof); err != nil {
		return false, err
	}
	err := e.ctx.VerifyKZGProof(GoKZG.KZGCommitment(commitment), GoKZG.Scalar(point), GoKZG.Scalar(value), GoKZG.KZGProof(proof))
	return err == nil, nil
}

func toGoKZGBlob(blob kzg.Blob) (*GoKZG.Blob, error) {
	if len(blob) != blobLength {
		return nil, errors.Wrapf(kzg.ErrBlobSize, "got %d bytes, want %d", len(blob), blobLength)
	}
	return (*GoKZG.Blob)((*[blobLength]byte)(blob)), nil
}

// checkPoints decodes the commitment and proof so that encoding problems surface as errors
// instead of as a failed verification.
func checkPoints(commitment kzg.Commitment, proof kzg.Proof) error {
	var p bls12381.G1Affine
	if _, err := p.SetBytes(commitment[:]); err != nil {
		return errors.Wrapf(kzg.ErrMalformedPoint, "commitment: %v", err)
	}
	if _, err := p.SetBytes(proof[:]); err != nil {
		return errors.Wrapf(kzg.ErrMalformedPoint, "proof: %v", err)
	}
	return nil
}
