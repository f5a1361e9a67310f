package blocks

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blobkzg/beacon-chain/core/signing"
	fieldparams "github.com/prysmaticlabs/blobkzg/config/fieldparams"
	"github.com/prysmaticlabs/blobkzg/config/params"
	"github.com/prysmaticlabs/blobkzg/crypto/bls"
	"github.com/prysmaticlabs/blobkzg/time/slots"
)

// SignedBlobSidecar wraps a sidecar with a signature over its signing root. The sidecar is
// shared, not copied.
type SignedBlobSidecar struct {
	Message   *BlobSidecar
	Signature [fieldparams.BLSSignatureLength]byte
}

// Sign signs the sidecar under the blob sidecar domain of the fork version active at the
// sidecar's epoch. The sidecar itself is left untouched.
func (b *BlobSidecar) Sign(
	sk bls.SecretKey,
	fork *signing.Fork,
	genesisValidatorsRoot [32]byte,
	cfg *params.BeaconChainConfig,
) (*SignedBlobSidecar, error) {
	domain, err := sidecarDomain(b, fork, genesisValidatorsRoot, cfg)
	if err != nil {
		return nil, err
	}
	sig, err := signing.ComputeDomainAndSign(b, domain, sk)
	if err != nil {
		return nil, errors.Wrap(err, "could not sign blob sidecar")
	}
	signed := &SignedBlobSidecar{Message: b}
	copy(signed.Signature[:], sig)
	return signed, nil
}

// Verify checks the signature against pubkey under the same domain Sign uses.
func (s *SignedBlobSidecar) Verify(pubkey []byte, fork *signing.Fork, genesisValidatorsRoot [32]byte) error {
	if s == nil || s.Message == nil {
		return errNilSidecar
	}
	domain, err := sidecarDomain(s.Message, fork, genesisValidatorsRoot, s.Message.cfg)
	if err != nil {
		return err
	}
	return signing.VerifySigningRoot(s.Message, pubkey, s.Signature[:], domain)
}

func sidecarDomain(
	b *BlobSidecar,
	fork *signing.Fork,
	genesisValidatorsRoot [32]byte,
	cfg *params.BeaconChainConfig,
) ([fieldparams.DomainLength]byte, error) {
	if cfg == nil {
		return [fieldparams.DomainLength]byte{}, errNilConfig
	}
	epoch := slots.ToEpoch(b.slot, cfg)
	domain, err := signing.Domain(fork, epoch, cfg.DomainBlobSidecar, genesisValidatorsRoot)
	if err != nil {
		return [fieldparams.DomainLength]byte{}, errors.Wrap(err, "could not compute blob sidecar domain")
	}
	return domain, nil
}
