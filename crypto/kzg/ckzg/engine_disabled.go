//go:build !(ckzg && cgo)

package ckzg

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blobkzg/crypto/kzg"
)

// ErrUnavailable is returned when the binary was built without the ckzg tag or without cgo.
var ErrUnavailable = errors.New("c-kzg engine not compiled in, rebuild with -tags ckzg and cgo enabled")

// Available reports whether the binary was built with the C engine.
func Available() bool {
	return false
}

// New always fails in this build.
func New(string) (kzg.Engine, error) {
	return nil, ErrUnavailable
}
