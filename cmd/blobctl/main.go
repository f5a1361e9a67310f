// Package main is blobctl, a command line tool that computes and checks KZG commitments and
// proofs for blobs and blob sidecars.
package main

import (
	"fmt"
	"os"

	"github.com/prysmaticlabs/blobkzg/io/logs"
	"github.com/prysmaticlabs/blobkzg/monitoring/prometheus"
	"github.com/prysmaticlabs/blobkzg/runtime/version"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"go.uber.org/automaxprocs/maxprocs"
)

var log = logrus.WithField("prefix", "blobctl")

var appFlags = []cli.Flag{
	ConfigFlag,
	ChainConfigFileFlag,
	KzgEngineFlag,
	TrustedSetupFileFlag,
	ParallelBatchFlag,
	VerbosityFlag,
	LogFileFlag,
	MetricsFileFlag,
}

func main() {
	customFormatter := new(prefixed.TextFormatter)
	customFormatter.TimestampFormat = "2006-01-02 15:04:05"
	customFormatter.FullTimestamp = true
	logrus.SetFormatter(customFormatter)

	app := cli.App{
		Name:    "blobctl",
		Usage:   "compute and verify KZG commitments and proofs for blob sidecars",
		Version: version.Version(),
		Flags:   appFlags,
		Before: func(c *cli.Context) error {
			level, err := logrus.ParseLevel(c.String(VerbosityFlag.Name))
			if err != nil {
				return err
			}
			logrus.SetLevel(level)
			if _, err := maxprocs.Set(maxprocs.Logger(log.Debugf)); err != nil {
				log.WithError(err).Warn("Could not set GOMAXPROCS from the container quota")
			}
			if c.String(MetricsFileFlag.Name) != "" {
				logrus.AddHook(prometheus.NewLogrusCollector())
			}
			if f := c.String(LogFileFlag.Name); f != "" {
				return logs.ConfigurePersistentLogging(f)
			}
			return nil
		},
		After: func(c *cli.Context) error {
			if f := c.String(MetricsFileFlag.Name); f != "" {
				return prometheus.WriteMetricsFile(f)
			}
			return nil
		},
		Commands: Commands,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Commands lists every blobctl subcommand.
var Commands = []*cli.Command{
	commitCmd,
	verifyCmd,
	evaluateCmd,
	checkCmd,
	randomCmd,
	sizeCmd,
}
