package params

// MinimalSpecConfig returns a copy of the minimal preset. Blobs shrink to four field elements,
// which only test engines can serve.
func MinimalSpecConfig() *BeaconChainConfig {
	minimalConfig := mainnetBeaconConfig.Copy()
	minimalConfig.ConfigName = ConfigNames[Minimal]
	minimalConfig.PresetBase = "minimal"
	minimalConfig.GenesisForkVersion = []byte{0, 0, 0, 1}
	minimalConfig.DenebForkVersion = []byte{4, 0, 0, 1}
	minimalConfig.DenebForkEpoch = farFutureEpoch
	minimalConfig.SlotsPerEpoch = 8
	minimalConfig.FieldElementsPerBlob = 4
	return minimalConfig
}
