package kzg

import (
	"time"

	"github.com/prysmaticlabs/blobkzg/crypto/kzg"
)

// EvaluationVerifier checks standalone evaluation proofs, no blob involved.
type EvaluationVerifier struct {
	engine kzg.Engine
}

func NewEvaluationVerifier(engine kzg.Engine) (*EvaluationVerifier, error) {
	if engine == nil {
		return nil, errNilEngine
	}
	return &EvaluationVerifier{engine: engine}, nil
}

// VerifyKZGProof reports whether proof shows that the polynomial committed to by commitment
// evaluates to value at point. Errors are reserved for inputs the engine can not decode.
func (v *EvaluationVerifier) VerifyKZGProof(commitment kzg.Commitment, proof kzg.Proof, point, value kzg.Scalar) (bool, error) {
	start := time.Now()
	ok, err := v.engine.VerifyKZGProof(commitment, point, value, proof)
	verificationLatency.WithLabelValues("evaluation").Observe(float64(time.Since(start).Milliseconds()))
	if err != nil {
		err = wrapEngineErr("verify evaluation proof", err)
	}
	recordVerification("evaluation", ok, err)
	return ok && err == nil, err
}
