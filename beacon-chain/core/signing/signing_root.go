// Package signing computes domains and signing roots and verifies BLS signatures over them.
package signing

import (
	"github.com/pkg/errors"
	fieldparams "github.com/prysmaticlabs/blobkzg/config/fieldparams"
	"github.com/prysmaticlabs/blobkzg/crypto/bls"
	"github.com/prysmaticlabs/blobkzg/encoding/ssz"
)

// ErrSigFailedToVerify returns when a signature of a block object(ie attestation, slashing, exit... etc)
// failed to verify.
var ErrSigFailedToVerify = errors.New("signature did not verify")

// Hashable is any object with a hash tree root.
type Hashable interface {
	HashTreeRoot() ([32]byte, error)
}

// ComputeSigningRoot computes the root of the object by calculating the hash tree root of the signing data with the given domain.
//
// Spec pseudocode definition:
//
//	def compute_signing_root(ssz_object: SSZObject, domain: Domain) -> Root:
//	  """
//	  Return the signing root for the corresponding signing data.
//	  """
//	  return hash_tree_root(SigningData(
//	      object_root=hash_tree_root(ssz_object),
//	      domain=domain,
//	  ))
func ComputeSigningRoot(object Hashable, domain [fieldparams.DomainLength]byte) ([32]byte, error) {
	if object == nil {
		return [32]byte{}, errors.New("cannot compute signing root of nil")
	}
	objRoot, err := object.HashTreeRoot()
	if err != nil {
		return [32]byte{}, errors.Wrap(err, "could not compute object root")
	}
	return ssz.SigningDataRoot(objRoot, domain), nil
}

// ComputeDomainAndSign signs the signing root of object under domain and returns the serialized signature.
func ComputeDomainAndSign(object Hashable, domain [fieldparams.DomainLength]byte, key bls.SecretKey) ([]byte, error) {
	if key == nil {
		return nil, errors.New("nil secret key")
	}
	root, err := ComputeSigningRoot(object, domain)
	if err != nil {
		return nil, err
	}
	return key.Sign(root[:]).Marshal(), nil
}

// VerifySigningRoot verifies the signing root of an object given its public key, signature and domain.
func VerifySigningRoot(obj Hashable, pub, signature []byte, domain [fieldparams.DomainLength]byte) error {
	publicKey, err := bls.PublicKeyFromBytes(pub)
	if err != nil {
		return errors.Wrap(err, "could not convert bytes to public key")
	}
	sig, err := bls.SignatureFromBytes(signature)
	if err != nil {
		return errors.Wrap(err, "could not convert bytes to signature")
	}
	root, err := ComputeSigningRoot(obj, domain)
	if err != nil {
		return errors.Wrap(err, "could not compute signing root")
	}
	if !sig.Verify(publicKey, root[:]) {
		return ErrSigFailedToVerify
	}
	return nil
}
