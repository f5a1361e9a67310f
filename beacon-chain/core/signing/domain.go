package signing

import (
	"github.com/pkg/errors"
	fieldparams "github.com/prysmaticlabs/blobkzg/config/fieldparams"
	"github.com/prysmaticlabs/blobkzg/config/params"
	"github.com/prysmaticlabs/blobkzg/consensus-types/primitives"
	"github.com/prysmaticlabs/blobkzg/encoding/bytesutil"
	"github.com/prysmaticlabs/blobkzg/encoding/ssz"
)

// ErrNilFork is returned when a domain is requested without fork information.
var ErrNilFork = errors.New("nil fork")

// Fork describes the fork schedule entry that is active around a signing epoch.
type Fork struct {
	PreviousVersion [fieldparams.VersionLength]byte
	CurrentVersion  [fieldparams.VersionLength]byte
	Epoch           primitives.Epoch
}

// DenebFork returns the fork that moves from the genesis version to the deneb version at
// the configured deneb epoch.
func DenebFork(cfg *params.BeaconChainConfig) *Fork {
	return &Fork{
		PreviousVersion: bytesutil.ToBytes4(cfg.GenesisForkVersion),
		CurrentVersion:  bytesutil.ToBytes4(cfg.DenebForkVersion),
		Epoch:           cfg.DenebForkEpoch,
	}
}

// Domain returns the domain version for BLS private key to sign and verify.
//
// Spec pseudocode definition:
//
//	def get_domain(state: BeaconState, domain_type: DomainType, epoch: Epoch=None) -> Domain:
//	  """
//	  Return the signature domain (fork version concatenated with domain type) of a message.
//	  """
//	  epoch = get_current_epoch(state) if epoch is None else epoch
//	  fork_version = state.fork.previous_version if epoch < state.fork.epoch else state.fork.current_version
//	  return compute_domain(domain_type, fork_version, state.genesis_validators_root)
func Domain(fork *Fork, epoch primitives.Epoch, domainType [4]byte, genesisRoot [32]byte) ([fieldparams.DomainLength]byte, error) {
	if fork == nil {
		return [fieldparams.DomainLength]byte{}, ErrNilFork
	}
	forkVersion := fork.CurrentVersion
	if epoch < fork.Epoch {
		forkVersion = fork.PreviousVersion
	}
	return ComputeDomain(domainType, forkVersion, genesisRoot), nil
}

// ComputeDomain returns the domain version for BLS private key to sign and verify.
//
// Spec pseudocode definition:
//
//	def compute_domain(domain_type: DomainType, fork_version: Version=None, genesis_validators_root: Root=None) -> Domain:
//	  """
//	  Return the domain for the ``domain_type`` and ``fork_version``.
//	  """
//	  if fork_version is None:
//	      fork_version = GENESIS_FORK_VERSION
//	  if genesis_validators_root is None:
//	      genesis_validators_root = Root()  # all bytes zero by default
//	  fork_data_root = compute_fork_data_root(fork_version, genesis_validators_root)
//	  return Domain(domain_type + fork_data_root[:28])
func ComputeDomain(domainType [4]byte, forkVersion [fieldparams.VersionLength]byte, genesisValidatorsRoot [32]byte) [fieldparams.DomainLength]byte {
	forkDataRoot := ssz.ForkDataRoot(forkVersion, genesisValidatorsRoot)
	var d [fieldparams.DomainLength]byte
	copy(d[:4], domainType[:])
	copy(d[4:], forkDataRoot[:28])
	return d
}
