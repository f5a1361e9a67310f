package params

import (
	"github.com/mohae/deepcopy"
	"github.com/pkg/errors"
)

const (
	Mainnet ConfigName = iota
	Minimal
)

// ConfigNames provides network configuration names.
var ConfigNames = map[ConfigName]string{
	Mainnet: "mainnet",
	Minimal: "minimal",
}

// ConfigName enum describes the type of known network in use.
type ConfigName int

func (n ConfigName) String() string {
	s, ok := ConfigNames[n]
	if !ok {
		return "undefined"
	}
	return s
}

// ByName returns a copy of the preset registered under name.
func ByName(name string) (*BeaconChainConfig, error) {
	switch name {
	case Mainnet.String():
		return MainnetConfig(), nil
	case Minimal.String():
		return MinimalSpecConfig(), nil
	}
	return nil, errors.Errorf("unknown config name %q", name)
}

// Copy returns a copy of the config object.
func (b *BeaconChainConfig) Copy() *BeaconChainConfig {
	config := deepcopy.Copy(*b).(BeaconChainConfig)
	return &config
}
