package main

import (
	"github.com/prysmaticlabs/blobkzg/cmd/flags"
	"github.com/prysmaticlabs/blobkzg/config/params"
	"github.com/urfave/cli/v2"
)

const (
	engineGoKZG       = "gokzg"
	engineCKZG        = "ckzg"
	engineInsecure    = "insecure-test"
	formatSSZ         = "ssz"
	formatJSON        = "json"
	defaultVerbosity  = "info"
	defaultConfigName = "mainnet"
)

var (
	configName   string
	engineName   string
	outputFormat string
)

var (
	// ConfigFlag selects one of the built in presets.
	ConfigFlag = flags.EnumValue{
		Name:        "config",
		Usage:       "Preset that sizes blobs and sidecars",
		Destination: &configName,
		Enum:        []string{params.Mainnet.String(), params.Minimal.String()},
		Value:       defaultConfigName,
	}.GenericFlag()
	// ChainConfigFileFlag loads a yaml chain config on top of the preset it names.
	ChainConfigFileFlag = &cli.StringFlag{
		Name:  "chain-config-file",
		Usage: "Path to a yaml chain config, overrides --config",
	}
	// KzgEngineFlag picks the commitment engine.
	KzgEngineFlag = flags.EnumValue{
		Name:        "kzg-engine",
		Usage:       "KZG engine, insecure-test is a hash based fake for the minimal preset",
		Destination: &engineName,
		Enum:        []string{engineGoKZG, engineCKZG, engineInsecure},
		Value:       engineGoKZG,
	}.GenericFlag()
	// TrustedSetupFileFlag is the trusted setup the c-kzg engine loads.
	TrustedSetupFileFlag = &cli.StringFlag{
		Name:  "trusted-setup-file",
		Usage: "Path to the trusted setup used by the ckzg engine",
	}
	// ParallelBatchFlag makes the go-kzg engine verify batches across goroutines.
	ParallelBatchFlag = &cli.BoolFlag{
		Name:  "parallel-batch",
		Usage: "Verify proof batches in parallel when using the gokzg engine",
	}
	// VerbosityFlag sets the log level.
	VerbosityFlag = &cli.StringFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity (trace, debug, info, warn, error, fatal, panic)",
		Value: defaultVerbosity,
	}
	// LogFileFlag mirrors the logs into a file.
	LogFileFlag = &cli.StringFlag{
		Name:  "log-file",
		Usage: "Also write logs to this file",
	}
	// MetricsFileFlag dumps the verification metrics when the command finishes.
	MetricsFileFlag = &cli.StringFlag{
		Name:  "metrics-file",
		Usage: "Write prometheus metrics in text format to this file on exit",
	}

	blobFileFlag = &cli.StringFlag{
		Name:     "blob-file",
		Usage:    "File holding a blob, either raw bytes or 0x prefixed hex",
		Required: true,
	}
	commitmentFlag = &cli.StringFlag{
		Name:     "commitment",
		Usage:    "0x prefixed KZG commitment",
		Required: true,
	}
	proofFlag = &cli.StringFlag{
		Name:     "proof",
		Usage:    "0x prefixed KZG proof",
		Required: true,
	}
	pointFlag = &cli.StringFlag{
		Name:     "point",
		Usage:    "0x prefixed field element the blob polynomial is evaluated at",
		Required: true,
	}
	sidecarFileFlag = &cli.StringSliceFlag{
		Name:     "sidecar-file",
		Usage:    "SSZ encoded blob sidecar, may be repeated",
		Required: true,
	}
	outputFileFlag = &cli.StringFlag{
		Name:  "output-file",
		Usage: "Write the result to this file instead of stdout",
	}
	formatFlag = flags.EnumValue{
		Name:        "format",
		Usage:       "Output encoding",
		Destination: &outputFormat,
		Enum:        []string{formatSSZ, formatJSON},
		Value:       formatSSZ,
	}.GenericFlag()
	indexFlag = &cli.Uint64Flag{
		Name:  "index",
		Usage: "Index of the generated sidecar within its block",
	}
	slotFlag = &cli.Uint64Flag{
		Name:  "slot",
		Usage: "Slot of the generated sidecar",
	}
	signFlag = &cli.BoolFlag{
		Name:  "sign",
		Usage: "Sign the generated sidecar with a fresh random key and check the signature",
	}
)
