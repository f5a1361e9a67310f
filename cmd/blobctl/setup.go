package main

import (
	"bytes"
	"os"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blobkzg/config/params"
	"github.com/prysmaticlabs/blobkzg/crypto/kzg"
	"github.com/prysmaticlabs/blobkzg/crypto/kzg/ckzg"
	"github.com/prysmaticlabs/blobkzg/crypto/kzg/gokzg"
	kzgtesting "github.com/prysmaticlabs/blobkzg/crypto/kzg/testing"
	"github.com/urfave/cli/v2"
)

var errTrustedSetupRequired = errors.New("--trusted-setup-file is required for the ckzg engine")

func loadConfig(c *cli.Context) (*params.BeaconChainConfig, error) {
	if f := c.String(ChainConfigFileFlag.Name); f != "" {
		cfg, err := params.LoadChainConfigFile(f)
		if err != nil {
			return nil, err
		}
		log.WithField("configName", cfg.ConfigName).Debug("Loaded chain config file")
		return cfg, nil
	}
	name := c.String(ConfigFlag.Name)
	if name == "" {
		name = defaultConfigName
	}
	return params.ByName(name)
}

func loadEngine(c *cli.Context, cfg *params.BeaconChainConfig) (kzg.Engine, error) {
	name := c.String(KzgEngineFlag.Name)
	switch name {
	case "", engineGoKZG:
		var opts []gokzg.Option
		if c.Bool(ParallelBatchFlag.Name) {
			opts = append(opts, gokzg.WithParallelBatch())
		}
		e, err := gokzg.New(opts...)
		if err != nil {
			return nil, err
		}
		return e, nil
	case engineCKZG:
		f := c.String(TrustedSetupFileFlag.Name)
		if f == "" {
			return nil, errTrustedSetupRequired
		}
		e, err := ckzg.New(f)
		if err != nil {
			return nil, err
		}
		return e, nil
	case engineInsecure:
		log.Warn("Using the insecure hash based KZG engine, results are meaningless outside of tests")
		return kzgtesting.New(cfg.FieldElementsPerBlob), nil
	}
	return nil, errors.Errorf("unknown kzg engine %q", name)
}

// readBlob accepts either the raw blob bytes or a 0x prefixed hex encoding of them.
func readBlob(path string) ([]byte, error) {
	data, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return nil, errors.Wrap(err, "could not read blob file")
	}
	trimmed := bytes.TrimSpace(data)
	if bytes.HasPrefix(trimmed, []byte("0x")) {
		blob, err := hexutil.Decode(string(trimmed))
		if err != nil {
			return nil, errors.Wrap(err, "could not decode hex blob")
		}
		return blob, nil
	}
	return data, nil
}

func decodeFixed(c *cli.Context, name string, want int) ([]byte, error) {
	b, err := hexutil.Decode(c.String(name))
	if err != nil {
		return nil, errors.Wrapf(err, "could not decode --%s", name)
	}
	if len(b) != want {
		return nil, errors.Errorf("--%s has %d bytes, want %d", name, len(b), want)
	}
	return b, nil
}

func writeOutput(c *cli.Context, data []byte) error {
	if f := c.String(outputFileFlag.Name); f != "" {
		return errors.Wrap(os.WriteFile(f, data, 0o600), "could not write output file")
	}
	_, err := c.App.Writer.Write(data)
	return err
}
