package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/prysmaticlabs/blobkzg/consensus-types/blocks"
	"github.com/urfave/cli/v2"
)

var sizeCmd = &cli.Command{
	Name:   "size",
	Usage:  "print the blob and maximum sidecar sizes of the selected config",
	Action: sizeAction,
}

func sizeAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	maxSize := blocks.MaxBlobSidecarSize(cfg)
	_, err = fmt.Fprintf(c.App.Writer, "config: %s\nbytes per blob: %d\nmax sidecar size: %d\nmax sidecar size (human): %s\n",
		cfg.ConfigName, cfg.BytesPerBlob(), maxSize, humanize.IBytes(maxSize))
	return err
}
