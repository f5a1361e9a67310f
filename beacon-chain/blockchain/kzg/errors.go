package kzg

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrInputSize is returned when a blob buffer does not have the configured BYTES_PER_BLOB length.
	ErrInputSize = errors.New("blob has the wrong size")
	// ErrLengthMismatch marks a batch whose commitments, blobs and proofs are not aligned. It never
	// reaches callers of ValidateBlobs, which report such a batch as invalid.
	ErrLengthMismatch = errors.New("batch commitments, blobs and proofs have different lengths")
	// ErrEngine is matched by every error that comes out of the commitment engine.
	ErrEngine = errors.New("kzg engine error")
	// ErrKzgProofFailed is returned when sidecar proofs do not verify against their commitments.
	ErrKzgProofFailed = errors.New("failed to prove commitment to BlobSidecar Blob data")

	errNilEngine     = errors.New("nil kzg engine")
	errBlobGeometry  = errors.New("engine blob geometry does not match the chain config")
	errCommitmentSet = errors.New("block commitments do not match the sidecar commitments")
)

// engineError keeps the engine's cause reachable through Unwrap while matching ErrEngine.
type engineError struct {
	op  string
	err error
}

func wrapEngineErr(op string, err error) error {
	return &engineError{op: op, err: err}
}

func (e *engineError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrEngine.Error(), e.op, e.err)
}

func (e *engineError) Is(target error) bool {
	return target == ErrEngine
}

func (e *engineError) Unwrap() error {
	return e.err
}

// KzgProofError lists the commitments whose sidecar proofs failed to verify.
type KzgProofError struct {
	failed [][48]byte
}

func NewKzgProofError(failed [][48]byte) *KzgProofError {
	return &KzgProofError{failed: failed}
}

func (e *KzgProofError) Error() string {
	cmts := make([]string, len(e.failed))
	for i := range e.failed {
		cmts[i] = fmt.Sprintf("%#x", e.failed[i])
	}
	return fmt.Sprintf("%s: bad commitments=%s", ErrKzgProofFailed.Error(), strings.Join(cmts, ","))
}

func (e *KzgProofError) Failed() [][48]byte {
	return e.failed
}

func (e *KzgProofError) Unwrap() error {
	return ErrKzgProofFailed
}
