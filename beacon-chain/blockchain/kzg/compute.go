package kzg

import (
	"github.com/prysmaticlabs/blobkzg/config/params"
	"github.com/prysmaticlabs/blobkzg/crypto/kzg"
)

// ProofComputer computes commitments and proofs for locally produced blobs.
type ProofComputer struct {
	converter *BlobConverter
	engine    kzg.Engine
}

// NewProofComputer fails if the engine can not serve the blob size of cfg.
func NewProofComputer(cfg *params.BeaconChainConfig, engine kzg.Engine) (*ProofComputer, error) {
	converter, err := newEngineComponent(cfg, engine)
	if err != nil {
		return nil, err
	}
	return &ProofComputer{converter: converter, engine: engine}, nil
}

// BlobToKZGCommitment commits to the blob.
func (p *ProofComputer) BlobToKZGCommitment(blob []byte) (kzg.Commitment, error) {
	b, err := p.converter.Convert(blob)
	if err != nil {
		return kzg.Commitment{}, err
	}
	commitment, err := p.engine.BlobToKZGCommitment(b)
	if err != nil {
		return kzg.Commitment{}, wrapEngineErr("blob to commitment", err)
	}
	return commitment, nil
}

// ComputeBlobKZGProof proves that commitment commits to blob. The commitment must be the
// one computed from blob, the engine may fail otherwise.
func (p *ProofComputer) ComputeBlobKZGProof(blob []byte, commitment kzg.Commitment) (kzg.Proof, error) {
	b, err := p.converter.Convert(blob)
	if err != nil {
		return kzg.Proof{}, err
	}
	proof, err := p.engine.ComputeBlobKZGProof(b, commitment)
	if err != nil {
		return kzg.Proof{}, wrapEngineErr("compute blob proof", err)
	}
	return proof, nil
}

// ComputeKZGProof opens the blob polynomial at point and returns the proof and the value there.
func (p *ProofComputer) ComputeKZGProof(blob []byte, point kzg.Scalar) (kzg.Proof, kzg.Scalar, error) {
	b, err := p.converter.Convert(blob)
	if err != nil {
		return kzg.Proof{}, kzg.Scalar{}, err
	}
	proof, value, err := p.engine.ComputeKZGProof(b, point)
	if err != nil {
		return kzg.Proof{}, kzg.Scalar{}, wrapEngineErr("compute evaluation proof", err)
	}
	return proof, value, nil
}
