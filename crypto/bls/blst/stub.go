//go:build blst_disabled || !((linux && amd64) || (linux && arm64) || (darwin && amd64) || (darwin && arm64) || (windows && amd64))

package blst

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blobkzg/crypto/bls/common"
)

var errUnsupported = errors.New("blst is not supported on this platform")

// RandKey is a stub for platforms without blst.
func RandKey() (common.SecretKey, error) {
	return nil, errUnsupported
}

// SecretKeyFromBytes is a stub for platforms without blst.
func SecretKeyFromBytes(_ []byte) (common.SecretKey, error) {
	return nil, errUnsupported
}

// PublicKeyFromBytes is a stub for platforms without blst.
func PublicKeyFromBytes(_ []byte) (common.PublicKey, error) {
	return nil, errUnsupported
}

// SignatureFromBytes is a stub for platforms without blst.
func SignatureFromBytes(_ []byte) (common.Signature, error) {
	return nil, errUnsupported
}
