package kzg

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blobkzg/config/params"
	"github.com/prysmaticlabs/blobkzg/consensus-types/blocks"
	"github.com/prysmaticlabs/blobkzg/crypto/kzg"
	"github.com/prysmaticlabs/blobkzg/runtime/logging"
	"github.com/sirupsen/logrus"
)

// ProofValidator checks blob, commitment and proof triplets, one at a time or in batches.
// A triplet that decodes but does not verify is reported as false, never as an error.
type ProofValidator struct {
	converter *BlobConverter
	engine    kzg.Engine
}

// NewProofValidator fails if the engine can not serve the blob size of cfg.
func NewProofValidator(cfg *params.BeaconChainConfig, engine kzg.Engine) (*ProofValidator, error) {
	converter, err := newEngineComponent(cfg, engine)
	if err != nil {
		return nil, err
	}
	return &ProofValidator{converter: converter, engine: engine}, nil
}

// ValidateBlob reports whether proof shows that commitment commits to blob. It returns
// ErrInputSize for a wrongly sized blob and an ErrEngine error for inputs the engine can not
// decode.
func (v *ProofValidator) ValidateBlob(commitment kzg.Commitment, proof kzg.Proof, blob []byte) (bool, error) {
	b, err := v.converter.Convert(blob)
	if err != nil {
		recordVerification("single", false, err)
		return false, err
	}
	start := time.Now()
	ok, err := v.engine.VerifyBlobKZGProof(b, commitment, proof)
	verificationLatency.WithLabelValues("single").Observe(float64(time.Since(start).Milliseconds()))
	if err != nil {
		err = wrapEngineErr("verify blob proof", err)
	}
	recordVerification("single", ok, err)
	return ok && err == nil, err
}

// ValidateBlobs reports whether every triplet at the same position of the three slices
// verifies. Misaligned slices and a nil blob at any position are reported as an invalid
// batch. An empty batch is valid.
// A batch of one is checked with ValidateBlob, batch verification is not used for it.
func (v *ProofValidator) ValidateBlobs(commitments []kzg.Commitment, blobs [][]byte, proofs []kzg.Proof) (bool, error) {
	if err := checkAligned(len(commitments), len(blobs), len(proofs)); err != nil {
		misalignedBatchesTotal.Inc()
		log.WithError(err).Debug("Rejecting misaligned blob batch")
		return false, nil
	}
	for i := range blobs {
		if blobs[i] == nil {
			log.WithField("position", i).Debug("Rejecting blob batch with a missing blob")
			recordVerification("batch", false, nil)
			return false, nil
		}
	}
	batchSize.Observe(float64(len(blobs)))
	switch len(blobs) {
	case 0:
		return true, nil
	case 1:
		return v.ValidateBlob(commitments[0], proofs[0], blobs[0])
	}

	converted := make([]kzg.Blob, len(blobs))
	for i := range blobs {
		b, err := v.converter.Convert(blobs[i])
		if err != nil {
			recordVerification("batch", false, err)
			return false, errors.Wrapf(err, "blob %d", i)
		}
		converted[i] = b
	}
	start := time.Now()
	ok, err := v.engine.VerifyBlobKZGProofBatch(converted, commitments, proofs)
	verificationLatency.WithLabelValues("batch").Observe(float64(time.Since(start).Milliseconds()))
	if err != nil {
		err = wrapEngineErr("verify blob proof batch", err)
	}
	recordVerification("batch", ok, err)
	return ok && err == nil, err
}

func checkAligned(commitments, blobs, proofs int) error {
	if commitments != blobs || blobs != proofs {
		return errors.Wrapf(ErrLengthMismatch, "commitments=%d blobs=%d proofs=%d", commitments, blobs, proofs)
	}
	return nil
}

// IsDataAvailable checks that
// - the sidecars carry exactly the commitments of the block, in index order
// - the sidecar proofs verify against those commitments
func (v *ProofValidator) IsDataAvailable(commitments [][48]byte, sidecars []*blocks.BlobSidecar) error {
	if len(commitments) != len(sidecars) {
		return errors.Wrapf(errCommitmentSet, "expected %d commitments, obtained %d sidecars", len(commitments), len(sidecars))
	}
	if len(commitments) == 0 {
		return nil
	}
	for i, sc := range sidecars {
		if sc.Index() != uint64(i) {
			return errors.Wrapf(errCommitmentSet, "sidecar at position %d has index %d", i, sc.Index())
		}
		if sc.KzgCommitment() != commitments[i] {
			return errors.Wrapf(errCommitmentSet, "commitment %d is %#x in the block, %#x in the sidecar", i, commitments[i], sc.KzgCommitment())
		}
	}
	return v.BisectBlobSidecarKzgProofs(sidecars)
}

// BisectBlobSidecarKzgProofs tries to batch prove the given sidecars against their own specified commitment.
// The caller is responsible for ensuring that the commitments match those specified by the block.
// If the batch fails, it will then try to verify the proofs one-by-one.
// If an error is returned, it will be a custom error of type KzgProofError that provides access
// to the list of commitments that failed.
func (v *ProofValidator) BisectBlobSidecarKzgProofs(sidecars []*blocks.BlobSidecar) error {
	if len(sidecars) == 0 {
		return nil
	}
	commitments := make([]kzg.Commitment, len(sidecars))
	blobs := make([][]byte, len(sidecars))
	proofs := make([]kzg.Proof, len(sidecars))
	for i, sc := range sidecars {
		commitments[i] = sc.KzgCommitment()
		blobs[i] = sc.Blob()
		proofs[i] = sc.KzgProof()
	}
	if ok, err := v.ValidateBlobs(commitments, blobs, proofs); err == nil && ok {
		return nil
	}
	failed := make([][48]byte, 0, len(sidecars))
	for i, sc := range sidecars {
		ok, err := v.ValidateBlob(commitments[i], proofs[i], blobs[i])
		if err == nil && ok {
			continue
		}
		fields := logging.BlobFields(sc)
		if err != nil {
			fields[logrus.ErrorKey] = err
		}
		log.WithFields(fields).Debug("Blob sidecar failed KZG proof verification")
		failed = append(failed, commitments[i])
	}
	return NewKzgProofError(failed)
}
