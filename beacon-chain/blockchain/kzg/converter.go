// Package kzg validates and computes KZG commitments and proofs for blobs on top of a
// pluggable commitment engine.
package kzg

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blobkzg/config/params"
	"github.com/prysmaticlabs/blobkzg/crypto/kzg"
)

// BlobConverter turns wire blobs into the engine representation.
type BlobConverter struct {
	bytesPerBlob uint64
}

// NewBlobConverter returns a converter for the blob size of cfg.
func NewBlobConverter(cfg *params.BeaconChainConfig) *BlobConverter {
	return &BlobConverter{bytesPerBlob: cfg.BytesPerBlob()}
}

// Convert checks the length of b and returns the engine view of it. The view aliases b.
// Field elements are not range checked here, the engine rejects non canonical ones.
func (c *BlobConverter) Convert(b []byte) (kzg.Blob, error) {
	if uint64(len(b)) != c.bytesPerBlob {
		return nil, errors.Wrapf(ErrInputSize, "got %d bytes, want %d", len(b), c.bytesPerBlob)
	}
	return kzg.Blob(b), nil
}

func newEngineComponent(cfg *params.BeaconChainConfig, engine kzg.Engine) (*BlobConverter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if engine == nil {
		return nil, errNilEngine
	}
	if engine.FieldElementsPerBlob() != cfg.FieldElementsPerBlob {
		return nil, errors.Wrapf(errBlobGeometry, "engine has %d field elements per blob, config %s has %d",
			engine.FieldElementsPerBlob(), cfg.ConfigName, cfg.FieldElementsPerBlob)
	}
	return NewBlobConverter(cfg), nil
}
