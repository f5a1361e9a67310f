//go:build ckzg && cgo

// Package ckzg implements the kzg.Engine interface on top of the c-kzg-4844 bindings.
package ckzg

import (
	"sync"

	ckzg4844 "github.com/ethereum/c-kzg-4844/bindings/go"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blobkzg/crypto/kzg"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "ckzg")

const blobLength = ckzg4844.BytesPerBlob

var (
	loadOnce sync.Once
	loadErr  error
	loaded   string
)

// Available reports whether the binary was built with the C engine.
func Available() bool {
	return true
}

// Engine verifies and computes KZG commitments and proofs with c-kzg-4844.
// The C library keeps a single trusted setup per process.
type Engine struct{}

// New loads the trusted setup file the first time it is called. Later calls must name the
// same file.
func New(trustedSetupFile string) (*Engine, error) {
	loadOnce.Do(func() {
		if err := ckzg4844.LoadTrustedSetupFile(trustedSetupFile); err != nil {
			loadErr = errors.Wrapf(err, "could not load trusted setup %s", trustedSetupFile)
			return
		}
		loaded = trustedSetupFile
		log.WithField("file", trustedSetupFile).Debug("Loaded KZG trusted setup")
	})
	if loadErr != nil {
		return nil, loadErr
	}
	if loaded != trustedSetupFile {
		return nil, errors.Errorf("trusted setup %s already loaded, can not load %s", loaded, trustedSetupFile)
	}
	return &Engine{}, nil
}

var _ kzg.Engine = (*Engine)(nil)

// FieldElementsPerBlob --
func (*Engine) FieldElementsPerBlob() uint64 {
	return ckzg4844.FieldElementsPerBlob
}

func (*Engine) BlobToKZGCommitment(blob kzg.Blob) (kzg.Commitment, error) {
	b, err := toBlob(blob)
	if err != nil {
		return kzg.Commitment{}, err
	}
	c, err := ckzg4844.BlobToKZGCommitment(b)
	if err != nil {
		return kzg.Commitment{}, err
	}
	return kzg.Commitment(c), nil
}

func (*Engine) ComputeBlobKZGProof(blob kzg.Blob, commitment kzg.Commitment) (kzg.Proof, error) {
	b, err := toBlob(blob)
	if err != nil {
		return kzg.Proof{}, err
	}
	p, err := ckzg4844.ComputeBlobKZGProof(b, ckzg4844.Bytes48(commitment))
	if err != nil {
		return kzg.Proof{}, err
	}
	return kzg.Proof(p), nil
}

func (*Engine) ComputeKZGProof(blob kzg.Blob, point kzg.Scalar) (kzg.Proof, kzg.Scalar, error) {
	b, err := toBlob(blob)
	if err != nil {
		return kzg.Proof{}, kzg.Scalar{}, err
	}
	p, y, err := ckzg4844.ComputeKZGProof(b, ckzg4844.Bytes32(point))
	if err != nil {
		return kzg.Proof{}, kzg.Scalar{}, err
	}
	return kzg.Proof(p), kzg.Scalar(y), nil
}

// VerifyBlobKZGProof reports whether proof shows that commitment commits to blob. c-kzg
// reports malformed inputs as errors itself.
func (*Engine) VerifyBlobKZGProof(blob kzg.Blob, commitment kzg.Commitment, proof kzg.Proof) (bool, error) {
	b, err := toBlob(blob)
	if err != nil {
		return false, err
	}
	ok, err := ckzg4844.VerifyBlobKZGProof(b, ckzg4844.Bytes48(commitment), ckzg4844.Bytes48(proof))
	if err != nil {
		return false, errors.Wrap(kzg.ErrMalformedPoint, err.Error())
	}
	return ok, nil
}

func (*Engine) VerifyBlobKZGProofBatch(blobs []kzg.Blob, commitments []kzg.Commitment, proofs []kzg.Proof) (bool, error) {
	if err := kzg.CheckBatchLengths(len(blobs), len(commitments), len(proofs)); err != nil {
		return false, err
	}
	cBlobs := make([]ckzg4844.Blob, len(blobs))
	cCommitments := make([]ckzg4844.Bytes48, len(commitments))
	cProofs := make([]ckzg4844.Bytes48, len(proofs))
	for i := range blobs {
		b, err := toBlob(blobs[i])
		if err != nil {
			return false, errors.Wrapf(err, "blob %d", i)
		}
		cBlobs[i] = *b
		cCommitments[i] = ckzg4844.Bytes48(commitments[i])
		cProofs[i] = ckzg4844.Bytes48(proofs[i])
	}
	ok, err := ckzg4844.VerifyBlobKZGProofBatch(cBlobs, cCommitments, cProofs)
	if err != nil {
		return false, errors.Wrap(kzg.ErrMalformedPoint, err.Error())
	}
	return ok, nil
}

func (*Engine) VerifyKZGProof(commitment kzg.Commitment, point, value kzg.Scalar, proof kzg.Proof) (bool, error) {
	if !kzg.IsCanonical(point[:]) || !kzg.IsCanonical(value[:]) {
		return false, kzg.ErrNonCanonicalScalar
	}
	ok, err := ckzg4844.VerifyKZGProof(ckzg4844.Bytes48(commitment), ckzg4844.Bytes32(point), ckzg4844.Bytes32(value), ckzg4844.Bytes48(proof))
	if err != nil {
		return false, errors.Wrap(kzg.ErrMalformedPoint, err.Error())
	}
	return ok, nil
}

func toBlob(blob kzg.Blob) (*ckzg4844.Blob, error) {
	if len(blob) != blobLength {
		return nil, errors.Wrapf(kzg.ErrBlobSize, "got %d bytes, want %d", len(blob), blobLength)
	}
	if err := kzg.CheckBlob(blob, ckzg4844.FieldElementsPerBlob); err != nil {
		return nil, err
	}
	return (*ckzg4844.Blob)((*[blobLength]byte)(blob)), nil
}
