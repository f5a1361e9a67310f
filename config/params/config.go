// Package params defines the network configuration shared by the blob sidecar components.
package params

import (
	"github.com/pkg/errors"
	fieldparams "github.com/prysmaticlabs/blobkzg/config/fieldparams"
	"github.com/prysmaticlabs/blobkzg/consensus-types/primitives"
)

var errInvalidConfig = errors.New("invalid chain config")

// BeaconChainConfig contains the preset and configuration values that size and sign blob sidecars.
// A config is passed explicitly to every component instead of being compiled in, so the same
// binary can serve the mainnet and the minimal presets.
type BeaconChainConfig struct {
	ConfigName           string            `yaml:"CONFIG_NAME" spec:"true"`
	PresetBase           string            `yaml:"PRESET_BASE" spec:"true"`
	GenesisForkVersion   []byte            `yaml:"GENESIS_FORK_VERSION" spec:"true"`
	DenebForkVersion     []byte            `yaml:"DENEB_FORK_VERSION" spec:"true"`
	DenebForkEpoch       primitives.Epoch  `yaml:"DENEB_FORK_EPOCH" spec:"true"`
	GenesisEpoch         primitives.Epoch  `yaml:"GENESIS_EPOCH"`
	SlotsPerEpoch        primitives.Slot   `yaml:"SLOTS_PER_EPOCH" spec:"true"`
	FieldElementsPerBlob uint64            `yaml:"FIELD_ELEMENTS_PER_BLOB" spec:"true"`
	BytesPerFieldElement uint64            `yaml:"BYTES_PER_FIELD_ELEMENT" spec:"true"`
	MaxBlobsPerBlock     uint64            `yaml:"MAX_BLOBS_PER_BLOCK" spec:"true"`
	DomainBlobSidecar    [4]byte           `yaml:"DOMAIN_BLOB_SIDECAR" spec:"true"`
	ZeroHash             [32]byte
	EmptySignature       [fieldparams.BLSSignatureLength]byte
}

// BytesPerBlob is the exact byte length of a blob under this configuration.
func (b *BeaconChainConfig) BytesPerBlob() uint64 {
	return b.FieldElementsPerBlob * b.BytesPerFieldElement
}

// Validate checks the values every blob component divides or sizes buffers by.
func (b *BeaconChainConfig) Validate() error {
	if b == nil {
		return errors.Wrap(errInvalidConfig, "nil config")
	}
	if b.SlotsPerEpoch == 0 {
		return errors.Wrap(errInvalidConfig, "SLOTS_PER_EPOCH must be positive")
	}
	if b.FieldElementsPerBlob == 0 || b.BytesPerFieldElement == 0 {
		return errors.Wrapf(errInvalidConfig, "blob geometry %d x %d is empty", b.FieldElementsPerBlob, b.BytesPerFieldElement)
	}
	if b.BytesPerFieldElement != fieldparams.KzgScalarLength {
		return errors.Wrapf(errInvalidConfig, "BYTES_PER_FIELD_ELEMENT must be %d, got %d", fieldparams.KzgScalarLength, b.BytesPerFieldElement)
	}
	if b.MaxBlobsPerBlock == 0 {
		return errors.Wrap(errInvalidConfig, "MAX_BLOBS_PER_BLOCK must be positive")
	}
	if len(b.GenesisForkVersion) != fieldparams.VersionLength || len(b.DenebForkVersion) != fieldparams.VersionLength {
		return errors.Wrap(errInvalidConfig, "fork versions must be 4 bytes")
	}
	return nil
}
