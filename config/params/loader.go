package params

import (
	"encoding/hex"
	"os"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// LoadChainConfigFile loads a chain config file, converts hex values into a format the yaml
// parser understands and applies the values on top of the preset named by PRESET_BASE.
// Keys this module does not use are ignored.
func LoadChainConfigFile(chainConfigFileName string) (*BeaconChainConfig, error) {
	yamlFile, err := os.ReadFile(chainConfigFileName) // #nosec G304
	if err != nil {
		return nil, errors.Wrap(err, "failed to read chain config file")
	}
	return UnmarshalConfig(yamlFile)
}

// UnmarshalConfig applies the yaml encoded config on top of the matching preset.
func UnmarshalConfig(yamlFile []byte) (*BeaconChainConfig, error) {
	// Default to using mainnet.
	conf := MainnetConfig()
	// To track if config name is defined inside config file.
	hasConfigName := false
	// Convert 0x hex inputs to fixed bytes arrays
	lines := strings.Split(string(yamlFile), "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "CONFIG_NAME") {
			hasConfigName = true
		}
		if strings.HasPrefix(line, "PRESET_BASE: 'minimal'") ||
			strings.HasPrefix(line, `PRESET_BASE: "minimal"`) ||
			strings.HasPrefix(line, "PRESET_BASE: minimal") ||
			strings.HasPrefix(line, "# Minimal preset") {
			conf = MinimalSpecConfig()
		}
		if !strings.HasPrefix(line, "#") && strings.Contains(line, "0x") {
			parts, err := ReplaceHexStringWithYAMLFormat(line)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", i+1)
			}
			lines[i] = strings.Join(parts, "\n")
		}
	}
	yamlFile = []byte(strings.Join(lines, "\n"))
	if err := yaml.UnmarshalStrict(yamlFile, conf); err != nil {
		if _, ok := err.(*yaml.TypeError); !ok {
			return nil, errors.Wrap(err, "failed to parse chain config yaml file")
		}
		log.WithError(err).Debug("Ignoring chain config entries that are not used for blob sidecars")
	}
	if !hasConfigName {
		conf.ConfigName = "devnet"
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	log.Debugf("Config file values: %+v", conf)
	return conf, nil
}

// ReplaceHexStringWithYAMLFormat will replace hex strings that the yaml parser will understand.
func ReplaceHexStringWithYAMLFormat(line string) ([]string, error) {
	parts := strings.Split(line, "0x")
	// Drop trailing comments or quotes after the value.
	fields := strings.Fields(parts[1])
	if len(fields) == 0 {
		return nil, errors.Errorf("missing hex value in %q", line)
	}
	value := strings.Trim(fields[0], `'"`)
	decoded, err := hex.DecodeString(value)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode hex string")
	}
	var fixed interface{}
	switch l := len(decoded); {
	case l == 1:
		fixed = decoded[0]
	case l > 1 && l <= 4:
		var arr [4]byte
		copy(arr[:], decoded)
		fixed = arr
	case l > 4 && l <= 8:
		var arr [8]byte
		copy(arr[:], decoded)
		fixed = arr
	case l > 8 && l <= 20:
		var arr [20]byte
		copy(arr[:], decoded)
		fixed = arr
	case l > 20 && l <= 32:
		var arr [32]byte
		copy(arr[:], decoded)
		fixed = arr
	default:
		return nil, errors.Errorf("unsupported hex value length %d", l)
	}
	fixedByte, err := yaml.Marshal(fixed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal config value")
	}
	if len(decoded) == 1 {
		parts[0] += string(fixedByte)
		return parts[:1], nil
	}
	parts[1] = string(fixedByte)
	return parts, nil
}
