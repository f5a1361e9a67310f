package params

import (
	"math"
)

var mainnetBeaconConfig = &BeaconChainConfig{
	ConfigName:           ConfigNames[Mainnet],
	PresetBase:           "mainnet",
	GenesisForkVersion:   []byte{0, 0, 0, 0},
	DenebForkVersion:     []byte{4, 0, 0, 0},
	DenebForkEpoch:       269568,
	GenesisEpoch:         0,
	SlotsPerEpoch:        32,
	FieldElementsPerBlob: 4096,
	BytesPerFieldElement: 32,
	MaxBlobsPerBlock:     6,
	DomainBlobSidecar:    bytes4(0x0B000000),
}

// MainnetConfig returns a copy of the mainnet preset.
func MainnetConfig() *BeaconChainConfig {
	return mainnetBeaconConfig.Copy()
}

func bytes4(v uint32) [4]byte {
	return [4]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

// farFutureEpoch is used by presets that have not scheduled a fork.
const farFutureEpoch = math.MaxUint64
